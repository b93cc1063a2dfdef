package service

import (
	"context"

	detail "github.com/doitintl/product-catalog/catalogdetail/domain"
	"github.com/doitintl/product-catalog/productcatalog/domain"
)

//go:generate mockery --output=./mocks --all
type IProductService interface {
	ListProducts(ctx context.Context) (*domain.ProductList, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	AddProduct(ctx context.Context, id string, name string) (*domain.Product, error)
}

type DetailFetcher interface {
	GetCatalogDetail(ctx context.Context) (*detail.CatalogDetail, error)
}
