package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/product-catalog/framework/web"
	"github.com/doitintl/product-catalog/logger"
	"github.com/doitintl/product-catalog/productcatalog/domain"
	"github.com/doitintl/product-catalog/productcatalog/service"
)

const (
	healthy = "healthy"
	idParam = "id"
)

type Products struct {
	loggerProvider logger.Provider
	service        service.IProductService
}

func NewProducts(log logger.Provider, s service.IProductService) *Products {
	return &Products{
		log,
		s,
	}
}

func (h *Products) ListProducts(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	list, err := h.service.ListProducts(ctx)
	if err != nil {
		l.Errorf("Error 500 %s %s", domain.StatusNotRetrieved, err)
		return internalError(domain.StatusNotRetrieved, err)
	}

	l.Info("Get-All Request succeeded")

	return web.Respond(ctx, list, http.StatusOK)
}

func (h *Products) Ping(ctx *gin.Context) error {
	return web.Respond(ctx, healthy, http.StatusOK)
}

func (h *Products) GetProduct(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	id, err := productID(ctx)
	if err != nil {
		return err
	}

	product, err := h.service.GetProduct(ctx, id)
	if err != nil {
		l.Errorf("Error 500 %s %s", domain.StatusNotRetrieved, err)
		return internalError(domain.StatusNotRetrieved, err)
	}

	l.Infof("Get Request succeeded %s", product.Name)

	return web.Respond(ctx, domain.ProductResponse{
		Status: domain.StatusRetrieved,
		Name:   product.Name,
	}, http.StatusOK)
}

func (h *Products) AddProduct(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	id, err := productID(ctx)
	if err != nil {
		return err
	}

	var req domain.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		l.Errorf("Error 500 %s %s", domain.StatusNotSaved, err)
		return internalError(domain.StatusNotSaved, err)
	}

	if req.Name == nil {
		l.Errorf("Error 500 %s %s", domain.StatusNotSaved, domain.ErrMissingName)
		return internalError(domain.StatusNotSaved, domain.ErrMissingName)
	}

	product, err := h.service.AddProduct(ctx, id, *req.Name)
	if err != nil {
		l.Errorf("Error 500 %s %s", domain.StatusNotSaved, err)
		return internalError(domain.StatusNotSaved, err)
	}

	l.Infof("Post Request succeeded %s", product.Name)

	return web.Respond(ctx, domain.ProductResponse{
		Status: domain.StatusAdded,
		Name:   product.Name,
	}, http.StatusOK)
}

// productID reads the unsigned id path parameter in its canonical form, so "007" and "7" name the same product.
// Signed forms such as "-1" or "+7" are rejected.
func productID(ctx *gin.Context) (string, error) {
	n, err := strconv.ParseUint(ctx.Param(idParam), 10, 64)
	if err != nil {
		return "", web.TranslateError(domain.ErrInvalidProductID)
	}

	return strconv.FormatUint(n, 10), nil
}

func internalError(status string, err error) error {
	return web.NewRequestErrorWithBody(err, http.StatusInternalServerError, domain.ErrorResponse{
		Status:     status,
		StatusCode: strconv.Itoa(http.StatusInternalServerError),
		Message:    err.Error(),
	})
}
