package workers

import (
	"context"
	"fmt"
	"log/slog"
)

// Gateway is the realtime connection to the chat platform.
type Gateway interface {
	Open() error
	Close() error
}

// GatewayWorker holds the gateway connection open until ctx is canceled.
// A failed Open is returned so the supervisor reconnects later.
type GatewayWorker struct {
	gateway Gateway
	log     *slog.Logger
}

func NewGatewayWorker(gateway Gateway, log *slog.Logger) *GatewayWorker {
	return &GatewayWorker{gateway: gateway, log: log}
}

func (w *GatewayWorker) Run(ctx context.Context) error {
	if err := w.gateway.Open(); err != nil {
		return fmt.Errorf("gateway open: %w", err)
	}
	w.log.Info("Gateway connected")

	<-ctx.Done()

	if err := w.gateway.Close(); err != nil {
		w.log.Warn("Gateway close failed", "error", err)
	}
	w.log.Info("Gateway disconnected")
	return nil
}
