package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doitintl/product-catalog/catalogdetail/domain"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, domain.V1, cfg.Version)
	assert.Equal(t, "none", cfg.TracesExporter)
}

func TestLoadV2(t *testing.T) {
	t.Setenv("CATALOG_DETAIL_VERSION", "v2")
	t.Setenv("TRACES_EXPORTER", "stdout")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, domain.V2, cfg.Version)
	assert.Equal(t, "stdout", cfg.TracesExporter)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("CATALOG_DETAIL_VERSION", "9")

	_, err := Load()
	assert.ErrorIs(t, err, domain.ErrUnknownVersion)

	t.Setenv("CATALOG_DETAIL_VERSION", "2")
	t.Setenv("TRACES_EXPORTER", "jaeger")

	_, err = Load()
	assert.ErrorContains(t, err, "TracesExporter")
}
