package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/app"
)

// @title       BDD-Funes-Morales API
// @version     1.0
// @description Студенты (Postgres) + экзамены с файлами (Mongo + S3)
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Fatalf("build failed: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
