package service

import (
	"context"

	"github.com/doitintl/product-catalog/logger"
	"github.com/doitintl/product-catalog/productcatalog/dal"
	"github.com/doitintl/product-catalog/productcatalog/domain"
)

type Service struct {
	loggerProvider logger.Provider
	productsDAL    dal.Products
	details        DetailFetcher
}

// NewProductService builds the catalog service. details may be nil, in which
// case listings carry no catalog detail.
func NewProductService(loggerProvider logger.Provider, productsDAL dal.Products, details DetailFetcher) *Service {
	return &Service{
		loggerProvider,
		productsDAL,
		details,
	}
}

func (s *Service) ListProducts(ctx context.Context) (*domain.ProductList, error) {
	products, err := s.productsDAL.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	list := &domain.ProductList{
		Products: make(map[string]string, len(products)),
	}

	for _, p := range products {
		list.Products[p.ID] = p.Name
	}

	if s.details != nil {
		d, err := s.details.GetCatalogDetail(ctx)
		if err != nil {
			return nil, err
		}

		list.Details = d
	}

	return list, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.productsDAL.GetProduct(ctx, id)
}

func (s *Service) AddProduct(ctx context.Context, id string, name string) (*domain.Product, error) {
	product := domain.Product{ID: id, Name: name}

	if err := s.productsDAL.PutProduct(ctx, product); err != nil {
		return nil, err
	}

	s.loggerProvider(ctx).Debugf("stored product %s", id)

	return &product, nil
}
