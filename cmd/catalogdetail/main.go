package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/profiler"

	"github.com/doitintl/product-catalog/catalogdetail/api"
	"github.com/doitintl/product-catalog/catalogdetail/config"
	"github.com/doitintl/product-catalog/common"
	"github.com/doitintl/product-catalog/errorreporting"
	"github.com/doitintl/product-catalog/framework/server"
	"github.com/doitintl/product-catalog/logger"
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

	serviceName := "product-detail-v" + string(cfg.Version)

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

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	a := api.NewAPI(shutdown, cfg.Version, tp)

	log.Printf("Catalog Detail version %s starting on port 3000", cfg.Version)

	return server.Run(config.Addr, a.Build(), shutdown)
}
