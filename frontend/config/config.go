package config

import (
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/doitintl/product-catalog/common"
	"github.com/doitintl/product-catalog/frontend/domain"
)

const (
	defaultPort    = "9000"
	defaultBaseURL = "http://localhost:5000/products/"
)

type Config struct {
	Port                   string         `validate:"required,numeric"`
	BaseURL                string         `validate:"required,url"`
	Variant                domain.Variant `validate:"oneof=detailed basic"`
	RespondOnUpstreamError bool
	UpstreamTimeout        time.Duration `validate:"gte=0"`
	TracesExporter         string        `validate:"omitempty,oneof=none stdout"`
}

// Addr is the listen address built from Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads the frontend settings from the environment.
func Load() (*Config, error) {
	var finalErr *multierror.Error

	variant, err := domain.ParseVariant(common.GetEnv("FRONTEND_VARIANT", string(domain.VariantDetailed)))
	if err != nil {
		finalErr = multierror.Append(finalErr, err)
	}

	cfg := &Config{
		Port:                   common.GetEnv("PORT", defaultPort),
		BaseURL:                common.GetEnv("BASE_URL", defaultBaseURL),
		Variant:                variant,
		RespondOnUpstreamError: common.GetEnvBool("RESPOND_ON_UPSTREAM_ERROR", false),
		UpstreamTimeout:        common.GetEnvDuration("UPSTREAM_TIMEOUT", 0),
		TracesExporter:         common.GetEnv("TRACES_EXPORTER", "none"),
	}

	if err == nil {
		if err := common.ValidateStruct(cfg); err != nil {
			finalErr = multierror.Append(finalErr, err)
		}
	}

	return cfg, finalErr.ErrorOrNil()
}
