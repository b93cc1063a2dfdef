package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/product-catalog/framework/web"
	"github.com/doitintl/product-catalog/frontend/client/iface"
	"github.com/doitintl/product-catalog/frontend/domain"
	"github.com/doitintl/product-catalog/logger"
)

const (
	healthy      = "Healthy"
	indexPage    = "index.html"
	fallbackPage = "/"

	getSucceeded  = "Product Catalog get call was Successful from frontend"
	getFailed     = "There was error in Product Catalog get call from frontend"
	postSucceeded = "Product Catalog post call was Successful from frontend"
)

type Frontend struct {
	loggerProvider         logger.Provider
	client                 iface.CatalogClient
	variant                domain.Variant
	respondOnUpstreamError bool
	metrics                http.Handler
}

func NewFrontend(
	log logger.Provider,
	client iface.CatalogClient,
	variant domain.Variant,
	respondOnUpstreamError bool,
	metrics http.Handler,
) *Frontend {
	return &Frontend{
		log,
		client,
		variant,
		respondOnUpstreamError,
		metrics,
	}
}

// Index renders the product catalog page.
func (h *Frontend) Index(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	if q, ok := ctx.GetQuery("queryStr"); ok {
		l.Debugf("queryStr %q ignored", q)
	}

	catalog, err := h.client.GetCatalog(ctx, h.variant.ShowsDetails())
	if err != nil {
		l.Error(err)
		l.Error(getFailed)

		return h.fail(ctx, web.ErrBadGateway, err)
	}

	if err := web.RespondHTML(ctx, indexPage, domain.NewPage(catalog, h.variant), http.StatusOK); err != nil {
		l.Errorf("rendering %s: %s", indexPage, err)
		return h.fail(ctx, web.ErrInternalServerError, err)
	}

	l.Info(getSucceeded)

	return nil
}

// CreateProduct forwards the product form upstream and sends the browser back where it came from.
func (h *Frontend) CreateProduct(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	var req domain.ProductCreateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.client.CreateProduct(ctx, req); err != nil {
		l.Error(err)
		return h.fail(ctx, web.ErrBadGateway, err)
	}

	location := ctx.GetHeader("Referer")
	if location == "" {
		location = fallbackPage
	}

	if err := web.Redirect(ctx, location); err != nil {
		return err
	}

	l.Info(postSucceeded)

	return nil
}

func (h *Frontend) Ping(ctx *gin.Context) error {
	return web.Respond(ctx, healthy, http.StatusOK)
}

// Metrics exposes the process registry in the Prometheus text format.
func (h *Frontend) Metrics(ctx *gin.Context) error {
	h.metrics.ServeHTTP(ctx.Writer, ctx.Request)
	return nil
}

// fail either answers with the status kind translates to or, by default, writes
// nothing and holds the request until the client gives up.
func (h *Frontend) fail(ctx *gin.Context, kind, err error) error {
	if h.respondOnUpstreamError {
		return web.TranslateError(fmt.Errorf("%w: %w", kind, err))
	}

	<-ctx.Request.Context().Done()

	return nil
}
