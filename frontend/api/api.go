package api

import (
	"net/http"
	"os"

	"github.com/doitintl/product-catalog/framework/mid"
	"github.com/doitintl/product-catalog/framework/web"
	"github.com/doitintl/product-catalog/frontend/assets"
	"github.com/doitintl/product-catalog/frontend/client/iface"
	"github.com/doitintl/product-catalog/frontend/config"
	"github.com/doitintl/product-catalog/frontend/handlers"
	"github.com/doitintl/product-catalog/logger"
	"github.com/doitintl/product-catalog/metrics"
)

// API constructs the frontend api.
type API struct {
	shutdown    chan os.Signal
	cfg         *config.Config
	client      iface.CatalogClient
	scrape      http.Handler
	httpMetrics *metrics.HTTPMetrics
}

func NewAPI(
	shutdown chan os.Signal,
	cfg *config.Config,
	client iface.CatalogClient,
	scrape http.Handler,
	httpMetrics *metrics.HTTPMetrics,
) *API {
	return &API{
		shutdown,
		cfg,
		client,
		scrape,
		httpMetrics,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	app := web.NewApp(a.shutdown,
		mid.Metrics(a.httpMetrics),
		mid.Logger(),
		mid.Errors(),
		mid.Panics(),
		mid.Sentry(),
	)

	app.SetHTMLTemplate(assets.Templates())
	app.StaticFS("/public", assets.Public())

	frontend := handlers.NewFrontend(
		loggerProvider,
		a.client,
		a.cfg.Variant,
		a.cfg.RespondOnUpstreamError,
		a.scrape,
	)

	app.Get("/", frontend.Index)
	app.Post("/products", frontend.CreateProduct)
	app.Get("/ping", frontend.Ping)
	app.Get("/stats/prometheus", frontend.Metrics)

	return app
}
