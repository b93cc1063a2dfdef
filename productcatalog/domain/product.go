package domain

import (
	"errors"
	"fmt"

	detail "github.com/doitintl/product-catalog/catalogdetail/domain"
	"github.com/doitintl/product-catalog/framework/web"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = fmt.Errorf("%w: product id must be an unsigned integer", web.ErrBadRequest)
	ErrMissingName      = errors.New("product name is missing")
	ErrUnknownStore     = errors.New("unknown products store")
)

const (
	StatusRetrieved    = "Product Details retrieved"
	StatusAdded        = "New Product added to Product Catalog"
	StatusNotRetrieved = "Could not retrieve information"
	StatusNotSaved     = "Could not save information"
)

// StoreKind selects where products are kept.
type StoreKind string

const (
	StoreMemory   StoreKind = "memory"
	StoreDynamoDB StoreKind = "dynamodb"
	StorePostgres StoreKind = "postgres"
)

func ParseStoreKind(s string) (StoreKind, error) {
	switch k := StoreKind(s); k {
	case StoreMemory, StoreDynamoDB, StorePostgres:
		return k, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStore, s)
}

type Product struct {
	ID   string `json:"id" dynamodbav:"id"`
	Name string `json:"name" dynamodbav:"name"`
}

// ProductRequest is the body of an add request. An empty name is a valid name.
type ProductRequest struct {
	Name *string `json:"name"`
}

// ProductList is the catalog listing: product names keyed by id.
type ProductList struct {
	Products map[string]string     `json:"products"`
	Details  *detail.CatalogDetail `json:"details,omitempty"`
}

type ProductResponse struct {
	Status string `json:"status"`
	Name   string `json:"name"`
}

// ErrorResponse is the failure envelope of the catalog api.
type ErrorResponse struct {
	Status     string `json:"status"`
	StatusCode string `json:"statusCode"`
	Message    string `json:"message"`
}
