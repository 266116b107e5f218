package main

import (
	"channel-request/infrastructure/discord"
	"channel-request/internal"
	"channel-request/moderation"
	"channel-request/provisioner"
	"channel-request/repositories"
	"channel-request/resolver"
	"channel-request/runtime/workers"
	"channel-request/services"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/bwmarrin/discordgo"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run keeps every defer on the exit path, the audit database must be closed before
// the process ends.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	censorChar, err := internal.CharacterRune(config.CensorCharacter)
	if err != nil {
		return err
	}
	moderator, err := moderation.NewModerator(moderation.ParseWords(config.ForbiddenChannelWords), censorChar, log)
	if err != nil {
		return fmt.Errorf("moderator: %w", err)
	}

	// 2. Audit log (BadgerDB)
	var audit repositories.IProvisionRepository
	if config.AuditEnabled {
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
		audit = repositories.NewProvisionRepository(db, log)
	}

	// 3. Platform session
	session, err := discordgo.New("Bot " + config.DiscordToken)
	if err != nil {
		return fmt.Errorf("discord session: %w", err)
	}
	session.StateEnabled = true
	session.State.TrackMembers = true

	directory := discord.NewDirectory(session)
	service := services.NewChannelRequestService(
		log,
		resolver.NewResolver(directory, log, config.SearchLimit, config.ResolveConcurrency),
		provisioner.NewProvisioner(directory, discord.NewChannelCreator(session), log),
		moderator,
		audit,
		internal.ChannelSettingsFromEnviron,
	)
	discord.NewBot(log, service, config.InteractionTimeout).Register(session)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Supervision, blocks until a signal arrives
	workers.NewSupervisor(log, config.RestartInterval).
		Add(
			workers.NewGatewayWorker(session, log),
			workers.NewKeepaliveWorker(config.Port, log),
		).
		Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}
