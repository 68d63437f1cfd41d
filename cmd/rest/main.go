package main

import (
	"context"
	"log"

	"github.com/ShubhamChaudhary05/documindAI/internal/bootstrap"
	"github.com/ShubhamChaudhary05/documindAI/internal/config"
	"github.com/ShubhamChaudhary05/documindAI/internal/server"
	"github.com/ShubhamChaudhary05/documindAI/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracing
	shutdownTracer := tracer.Init(cfg.Otel)
	defer shutdownTracer(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		log.Panicf("Unable to bootstrap application: %v", err)
	}
	defer container.Logger.Sync()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
