//go:generate mockery --output=./mocks --all

package dal

import (
	"context"

	"github.com/doitintl/product-catalog/productcatalog/domain"
)

type Products interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// GetProduct returns domain.ErrProductNotFound when id is not stored.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	PutProduct(ctx context.Context, product domain.Product) error
}
