package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/product-catalog/catalogdetail/domain"
	"github.com/doitintl/product-catalog/framework/web"
	"github.com/doitintl/product-catalog/logger"
)

const healthy = "Healthy"

type CatalogDetail struct {
	loggerProvider logger.Provider
	version        domain.Version
}

func NewCatalogDetail(log logger.Provider, version domain.Version) *CatalogDetail {
	return &CatalogDetail{
		log,
		version,
	}
}

// GetCatalogDetail always answers with the variant's detail; it has no failure path.
func (h *CatalogDetail) GetCatalogDetail(ctx *gin.Context) error {
	detail := h.version.Detail()

	h.loggerProvider(ctx).Infof("Catalog Detail Version %s Get Request Successful", detail.Version)

	return web.Respond(ctx, detail, http.StatusOK)
}

func (h *CatalogDetail) Ping(ctx *gin.Context) error {
	return web.Respond(ctx, healthy, http.StatusOK)
}
