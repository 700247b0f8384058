package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"guest-push/httpapi"
	"guest-push/notify"
	"guest-push/push"
	"guest-push/repositories"
	"guest-push/workers"

	"github.com/Netflix/go-env"
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

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so every defer (database close included)
// executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	// .env is optional and only used for local runs.
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Store adapters & notification core
	users := repositories.NewUserRepository(db)
	chats := repositories.NewChatRepository(db)
	staff := repositories.NewStaffDirectory(db)

	pusher := push.NewClient(config.PushGatewayURL, config.PushServerKey)
	resolver := notify.NewResolver(users)
	dispatcher := notify.NewDispatcher(resolver, pusher, log)

	chatMessages := notify.NewChatMessageHandler(chats, dispatcher, log)
	checkIns := notify.NewCheckInHandler(dispatcher, log)
	serviceRequests := notify.NewServiceRequestHandler(staff, dispatcher, log)
	direct := notify.NewDirectSender(pusher, log)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Background workers under supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewHeartbeatWorker(log, config.HeartbeatInterval),
		workers.NewStoreGCWorker(db, log, config.StoreGCInterval),
	)
	go sup.Run(ctx)

	// 6. HTTP server (blocks until shutdown or failure)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := httpapi.NewServer(log, address,
		chatMessages, checkIns, serviceRequests, direct,
		users, chats, staff)
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	// 7. Final Cleanup
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
