package api

import (
	"net/http"
	"os"

	"go.opentelemetry.io/otel/trace"

	"github.com/doitintl/product-catalog/catalogdetail/domain"
	"github.com/doitintl/product-catalog/catalogdetail/handlers"
	"github.com/doitintl/product-catalog/framework/mid"
	"github.com/doitintl/product-catalog/framework/web"
	"github.com/doitintl/product-catalog/logger"
	"github.com/doitintl/product-catalog/tracing"
)

// API constructs a Product-Detail api for one variant.
type API struct {
	shutdown       chan os.Signal
	version        domain.Version
	tracerProvider trace.TracerProvider
}

func NewAPI(shutdown chan os.Signal, version domain.Version, tp trace.TracerProvider) *API {
	return &API{
		shutdown,
		version,
		tp,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	middlewares := []web.Middleware{mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry()}

	// The segment opens before anything else runs and closes after the response.
	if a.version.Traced() {
		middlewares = append([]web.Middleware{
			mid.Tracing(a.tracerProvider, tracing.Propagator, domain.SegmentName),
		}, middlewares...)
	}

	app := web.NewApp(a.shutdown, middlewares...)

	catalogDetail := handlers.NewCatalogDetail(loggerProvider, a.version)

	app.Get("/catalogDetail", catalogDetail.GetCatalogDetail)
	app.Get("/ping", catalogDetail.Ping)

	return app
}
