package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stripe/stripe-go/v82"

	"github.com/MhMunna12/kutumbari-restaurant-server/internal/config"
	"github.com/MhMunna12/kutumbari-restaurant-server/internal/es"
	"github.com/MhMunna12/kutumbari-restaurant-server/internal/handlers"
	"github.com/MhMunna12/kutumbari-restaurant-server/internal/logging"
	loggingmw "github.com/MhMunna12/kutumbari-restaurant-server/internal/middleware/logging"
	"github.com/MhMunna12/kutumbari-restaurant-server/internal/mykafka"
	httpserver "github.com/MhMunna12/kutumbari-restaurant-server/internal/transport/http"
)

const menuIndex = "menu"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	stripe.Key = configuration.STRIPE_SECRET_KEY

	jwtSecret := []byte(configuration.ACCESS_TOKEN_SECRET)

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	var esClient *elasticsearch.Client
	if configuration.ES_URL != "" {
		esClient, err = es.NewClient(configuration)
		if err != nil {
			logger.Warn("elasticsearch unavailable, menu search disabled", "error", err)
			esClient = nil
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:             db,
		JWTSecret:      jwtSecret,
		MenuHandler:    &handlers.MenuHandler{DB: db, Producer: prod, ES: esClient, Index: menuIndex},
		ReviewHandler:  &handlers.ReviewHandler{DB: db},
		CartHandler:    &handlers.CartHandler{DB: db},
		UserHandler:    &handlers.UserHandler{DB: db},
		PaymentHandler: &handlers.PaymentHandler{DB: db, Producer: prod},
		StatsHandler:   &handlers.StatsHandler{DB: db},
		TokenHandler:   &handlers.TokenHandler{JWTSecret: jwtSecret},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.Addr(),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	logger.Info("shutdown complete")
}
