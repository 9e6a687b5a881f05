package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tiketera/payment-extractor/internal/api"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	handler, err := api.NewHandler(log)
	if err != nil {
		log.Fatal("handler init", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		BodyLimit:             32 << 20, // statement PDFs and receipt photos
		DisableStartupMessage: true,
	})
	handler.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.Info("listening", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
