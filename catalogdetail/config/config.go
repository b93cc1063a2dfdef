package config

import (
	"github.com/hashicorp/go-multierror"

	"github.com/doitintl/product-catalog/catalogdetail/domain"
	"github.com/doitintl/product-catalog/common"
)

// Addr is fixed; the detail services always listen on port 3000.
const Addr = ":3000"

type Config struct {
	Version        domain.Version `validate:"oneof=1 2"`
	TracesExporter string         `validate:"omitempty,oneof=none stdout"`
}

// Load reads CATALOG_DETAIL_VERSION and TRACES_EXPORTER.
func Load() (*Config, error) {
	var finalErr *multierror.Error

	version, err := domain.ParseVersion(common.GetEnv("CATALOG_DETAIL_VERSION", string(domain.V1)))
	if err != nil {
		finalErr = multierror.Append(finalErr, err)
	}

	cfg := &Config{
		Version:        version,
		TracesExporter: common.GetEnv("TRACES_EXPORTER", "none"),
	}

	if err == nil {
		if err := common.ValidateStruct(cfg); err != nil {
			finalErr = multierror.Append(finalErr, err)
		}
	}

	return cfg, finalErr.ErrorOrNil()
}
