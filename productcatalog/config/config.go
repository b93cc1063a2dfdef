package config

import (
	"github.com/hashicorp/go-multierror"

	"github.com/doitintl/product-catalog/common"
	"github.com/doitintl/product-catalog/productcatalog/domain"
)

type Config struct {
	Port           string           `validate:"required,numeric"`
	Store          domain.StoreKind `validate:"oneof=memory dynamodb postgres"`
	TableName      string           `validate:"required_if=Store dynamodb"`
	TableRegion    string           `validate:"required_if=Store dynamodb"`
	DatabaseURL    string           `validate:"required_if=Store postgres"`
	AggAppURL      string           `validate:"omitempty,url"`
	TracesExporter string           `validate:"omitempty,oneof=none stdout"`
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads the catalog api settings from the environment.
func Load() (*Config, error) {
	var finalErr *multierror.Error

	store, err := domain.ParseStoreKind(common.GetEnv("PRODUCTS_STORE", string(domain.StoreMemory)))
	if err != nil {
		finalErr = multierror.Append(finalErr, err)
	}

	cfg := &Config{
		Port:           common.GetEnv("PORT", "5000"),
		Store:          store,
		TableName:      common.GetEnv("PRODUCTS_TABLE_NAME", "products"),
		TableRegion:    common.GetEnv("PRODUCTS_TABLE_REGION", "eu-west-1"),
		DatabaseURL:    common.GetEnv("DATABASE_URL", ""),
		AggAppURL:      common.GetEnv("AGG_APP_URL", ""),
		TracesExporter: common.GetEnv("TRACES_EXPORTER", "none"),
	}

	if err == nil {
		if err := common.ValidateStruct(cfg); err != nil {
			finalErr = multierror.Append(finalErr, err)
		}
	}

	return cfg, finalErr.ErrorOrNil()
}
