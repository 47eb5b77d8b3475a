package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wa4lo7k/FlashFundXxx-sub000/internal"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := internal.NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	repository, err := internal.NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	processor := internal.NewNowPaymentsClient(cfg.NowPaymentsAPIURL, cfg.NowPaymentsAPIKey, sugaredLogger)
	service := internal.NewService(repository, processor, internal.CallbackURLs{
		IPN:     cfg.IPNCallbackURL,
		Success: cfg.SuccessURL,
		Cancel:  cfg.CancelURL,
	}, sugaredLogger)
	handlers := internal.NewHandlers(service, cfg.JWTSecret, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")

	pay := api.Group("/payment")
	pay.Post("/create", handlers.CreatePayment)
	pay.Get("/status", handlers.PaymentStatus)
	pay.Post("/webhook", handlers.Webhook)

	go func() {
		err := app.Listen(cfg.RunAddress)
		if err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")

	err = app.Shutdown()
	if err != nil {
		sugaredLogger.Error(err)
	}
}
