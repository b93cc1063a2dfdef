package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/profiler"

	"github.com/doitintl/product-catalog/common"
	"github.com/doitintl/product-catalog/errorreporting"
	"github.com/doitintl/product-catalog/framework/server"
	"github.com/doitintl/product-catalog/frontend/api"
	"github.com/doitintl/product-catalog/frontend/client"
	"github.com/doitintl/product-catalog/frontend/config"
	"github.com/doitintl/product-catalog/logger"
	"github.com/doitintl/product-catalog/metrics"
	"github.com/doitintl/product-catalog/tracing"
)

func main() {
	if err := run(); err != nil {
		log.Println("error: ", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("main: invalid configuration. error %s", err)
		return err
	}

	serviceName := "frontend-" + string(cfg.Variant)

	// Profiler initialization, best done as early as possible.
	if common.Production {
		if err := profiler.Start(profiler.Config{
			Service:        serviceName,
			ServiceVersion: common.ServiceVersion,
			ProjectID:      common.ProjectID,
		}); err != nil {
			log.Printf("main: could not start profiler: %v", err)
		}
	}

	logging, err := logger.NewLogging(ctx)
	if err != nil {
		log.Printf("main: could not initialize logging. error %s", err)
		return err
	}
	defer logging.Close()

	if err := errorreporting.Init(ctx, serviceName); err != nil {
		log.Printf("main: could not initialize error reporting. error %s", err)
		return err
	}
	defer errorreporting.Close()

	tp, err := tracing.NewProvider(serviceName, cfg.TracesExporter)
	if err != nil {
		log.Printf("main: could not initialize tracing. error %s", err)
		return err
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("main: tracer shutdown: %s", err)
		}
	}()

	reg := metrics.NewRegistry()

	httpMetrics, err := metrics.NewHTTPMetrics(reg, "frontend")
	if err != nil {
		log.Printf("main: could not register metrics. error %s", err)
		return err
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	catalogClient := client.NewCatalogClient(cfg.BaseURL, cfg.UpstreamTimeout)

	a := api.NewAPI(shutdown, cfg, catalogClient, metrics.Handler(reg), httpMetrics)

	if cfg.Variant.ShowsDetails() {
		log.Println(cfg.BaseURL)
	}

	log.Printf("Listening on %s", cfg.Port)
	log.Printf("Using product catalog at %s", cfg.BaseURL)

	return server.Run(cfg.Addr(), a.Build(), shutdown)
}
