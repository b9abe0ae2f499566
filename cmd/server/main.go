package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/saimahendra282/testdeployment/internal/app"
)

// @title       Music API
// @version     1.0
// @description Загрузка картинки и аудио (GridFS/S3), список треков и стриминг файлов.
// @BasePath    /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Printf("[app] build failed: %v", err)
		os.Exit(1)
	}
	if err := a.Run(ctx); err != nil {
		log.Printf("[app] run failed: %v", err)
		os.Exit(1)
	}
}
