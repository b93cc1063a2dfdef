package api

import (
	"net/http"
	"os"

	"go.opentelemetry.io/otel/trace"

	"github.com/doitintl/product-catalog/framework/mid"
	"github.com/doitintl/product-catalog/framework/web"
	"github.com/doitintl/product-catalog/logger"
	"github.com/doitintl/product-catalog/productcatalog/handlers"
	"github.com/doitintl/product-catalog/productcatalog/service"
	"github.com/doitintl/product-catalog/tracing"
)

const segmentName = "Product-Catalog"

// API constructs the product catalog api.
type API struct {
	shutdown       chan os.Signal
	service        service.IProductService
	tracerProvider trace.TracerProvider
}

func NewAPI(shutdown chan os.Signal, s service.IProductService, tp trace.TracerProvider) *API {
	return &API{
		shutdown,
		s,
		tp,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	app := web.NewApp(a.shutdown,
		mid.Tracing(a.tracerProvider, tracing.Propagator, segmentName),
		mid.CORS(mid.CORSConfig{}),
		mid.Logger(),
		mid.Errors(),
		mid.Panics(),
		mid.Sentry(),
	)

	products := handlers.NewProducts(loggerProvider, a.service)

	group := web.NewGroup(app, "/products")

	group.Get("/", products.ListProducts)
	group.Get("/ping", products.Ping)
	group.Get("/:id", products.GetProduct)
	group.Post("/:id", products.AddProduct)

	// preflights
	group.Options("/", products.Ping)
	group.Options("/ping", products.Ping)
	group.Options("/:id", products.Ping)

	return app
}
