package dal

import (
	"context"
	"sort"
	"sync"

	"github.com/doitintl/product-catalog/productcatalog/domain"
)

// ProductsMemory keeps products for the lifetime of the process.
type ProductsMemory struct {
	mu    sync.RWMutex
	names map[string]string
}

func NewProductsMemory() *ProductsMemory {
	return &ProductsMemory{
		names: make(map[string]string),
	}
}

func (d *ProductsMemory) ListProducts(_ context.Context) ([]domain.Product, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	products := make([]domain.Product, 0, len(d.names))
	for id, name := range d.names {
		products = append(products, domain.Product{ID: id, Name: name})
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})

	return products, nil
}

func (d *ProductsMemory) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	name, ok := d.names[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	return &domain.Product{ID: id, Name: name}, nil
}

func (d *ProductsMemory) PutProduct(_ context.Context, product domain.Product) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.names[product.ID] = product.Name

	return nil
}
