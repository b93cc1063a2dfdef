package detailclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	detail "github.com/doitintl/product-catalog/catalogdetail/domain"
)

var ErrDetailUnavailable = errors.New("catalog detail unavailable")

// DetailClient reads the catalog detail the listing is enriched with.
type DetailClient struct {
	url  string
	rest *resty.Client
}

func NewDetailClient(url string) *DetailClient {
	rest := resty.New().
		SetTransport(otelhttp.NewTransport(http.DefaultTransport))

	rest.JSONMarshal = json.Marshal
	rest.JSONUnmarshal = json.Unmarshal

	return &DetailClient{
		url:  url,
		rest: rest,
	}
}

func (c *DetailClient) GetCatalogDetail(ctx context.Context) (*detail.CatalogDetail, error) {
	var d detail.CatalogDetail

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&d).
		ForceContentType("application/json").
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetailUnavailable, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: GET %s: %s", ErrDetailUnavailable, c.url, resp.Status())
	}

	return &d, nil
}
