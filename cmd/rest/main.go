package main

import (
	"context"
	"log"

	"givebridge-be/internal/bootstrap"
	"givebridge-be/internal/config"
	"givebridge-be/internal/server"
	"givebridge-be/internal/tracer"
	"givebridge-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to database: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	if err := container.MailConsumer.Start(context.Background()); err != nil {
		log.Printf("Warning: mail consumer failed to start: %v", err)
	}

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
