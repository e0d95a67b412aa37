package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/qhnnoe/citizen-request-app/internal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := internal.LoadConfig()

	store, err := internal.OpenLogStore(cfg.LogPath)
	if err != nil {
		log.Fatalf("Failed to open submission log: %v", err)
	}
	defer store.Close()

	media := internal.NewMediaStore(cfg.UploadDir)
	notifier := internal.NewNotifier(cfg)
	svc := internal.NewServices(store, media, notifier)
	web := internal.NewWeb(cfg, svc)

	if err := web.StartHTTP(ctx); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}

	log.Println("Shutdown complete")
}
