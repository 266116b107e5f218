package workers

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	KeepalivePath   = "/keepalive"
	shutdownTimeout = 5 * time.Second
)

// KeepaliveWorker serves the liveness probe that hosting platforms poll to keep
// the process awake.
type KeepaliveWorker struct {
	addr string
	log  *slog.Logger
}

func NewKeepaliveWorker(port int, log *slog.Logger) *KeepaliveWorker {
	return &KeepaliveWorker{addr: fmt.Sprintf(":%d", port), log: log}
}

func KeepaliveHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+KeepalivePath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux
}

func (w *KeepaliveWorker) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              w.addr,
		Handler:           KeepaliveHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		w.log.Info("Keepalive listening", "addr", w.addr, "path", KeepalivePath)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("keepalive server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			w.log.Warn("Keepalive shutdown failed", "error", err)
		}
		return nil
	}
}
