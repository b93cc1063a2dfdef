package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/profiler"

	"github.com/doitintl/product-catalog/common"
	"github.com/doitintl/product-catalog/errorreporting"
	"github.com/doitintl/product-catalog/framework/server"
	"github.com/doitintl/product-catalog/logger"
	"github.com/doitintl/product-catalog/productcatalog/api"
	"github.com/doitintl/product-catalog/productcatalog/config"
	"github.com/doitintl/product-catalog/productcatalog/dal"
	"github.com/doitintl/product-catalog/productcatalog/detailclient"
	"github.com/doitintl/product-catalog/productcatalog/domain"
	"github.com/doitintl/product-catalog/productcatalog/service"
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

	serviceName := "product-catalog-" + string(cfg.Store)

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

	productsDAL, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Printf("main: could not open %s products store. error %s", cfg.Store, err)
		return err
	}
	defer closeStore()

	var details service.DetailFetcher
	if cfg.AggAppURL != "" {
		details = detailclient.NewDetailClient(cfg.AggAppURL)
	}

	productService := service.NewProductService(logger.DetailedLoggerFromContext, productsDAL, details)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	a := api.NewAPI(shutdown, productService, tp)

	log.Printf("Product Catalog (%s store) listening on %s", cfg.Store, cfg.Port)

	return server.Run(cfg.Addr(), a.Build(), shutdown)
}

func openStore(ctx context.Context, cfg *config.Config) (dal.Products, func(), error) {
	noop := func() {}

	switch cfg.Store {
	case domain.StoreMemory:
		return dal.NewProductsMemory(), noop, nil
	case domain.StoreDynamoDB:
		d, err := dal.NewProductsDynamoDB(cfg.TableRegion, cfg.TableName)
		return d, noop, err
	case domain.StorePostgres:
		db, err := dal.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}

		d := dal.NewProductsPostgres(db)
		if err := d.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}

		return d, func() { db.Close() }, nil
	}

	return nil, noop, fmt.Errorf("%w: %q", domain.ErrUnknownStore, cfg.Store)
}
