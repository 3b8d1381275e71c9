package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"novamind-be/internal/bootstrap"
	"novamind-be/internal/config"
	"novamind-be/internal/server"
	"novamind-be/internal/tracer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Unable to bootstrap: %v", err)
	}
	defer container.Close()

	// 3. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg, container.Logger)
	defer shutdownTracer(context.Background())

	// 4. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		container.Logger.Error("MAIN", "Background consumer failed to start", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown()
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		container.Logger.Error("MAIN", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
