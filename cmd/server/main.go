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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/config"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/es"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/httpserver"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/logging"
	appmw "github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/middleware"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/mykafka"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/repo"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/service"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	ctx := context.Background()
	db, err := config.InitDB(ctx, configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	r := repo.New(db)

	categorySvc := service.NewCategoryService(r)
	productSvc := service.NewProductService(r)
	customerSvc := service.NewCustomerService(r)
	orderSvc := service.NewOrderService(r)
	orderItemSvc := service.NewOrderItemService(r)

	deps := httpserver.Deps{
		CategoryHandler:  &httpserver.CategoryHandler{Svc: categorySvc, Producer: producer},
		ProductHandler:   &httpserver.ProductHandler{Svc: productSvc, Producer: producer},
		CustomerHandler:  &httpserver.CustomerHandler{Svc: customerSvc, Producer: producer},
		OrderHandler:     &httpserver.OrderHandler{Svc: orderSvc, Producer: producer},
		OrderItemHandler: &httpserver.OrderItemHandler{Svc: orderItemSvc, Producer: producer},
	}

	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		deps.SearchHandler = &httpserver.SearchHandler{ES: esClient, Index: "products"}
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(appmw.RequestLogger(logger))

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.SERVER_PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
