//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/doitintl/product-catalog/frontend/domain"
)

type CatalogClient interface {
	GetCatalog(ctx context.Context, requireDetails bool) (*domain.Catalog, error)
	CreateProduct(ctx context.Context, req domain.ProductCreateRequest) error
}
