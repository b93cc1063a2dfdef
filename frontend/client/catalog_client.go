package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/doitintl/product-catalog/frontend/domain"
)

// CatalogClient calls the product catalog the frontend renders.
type CatalogClient struct {
	baseURL string
	rest    *resty.Client
}

type createProductBody struct {
	Name string `json:"name"`
}

// NewCatalogClient builds a client for baseURL. A zero timeout leaves calls unbounded.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	rest := resty.New().
		SetTransport(otelhttp.NewTransport(http.DefaultTransport)).
		SetRetryCount(0)

	if timeout > 0 {
		rest.SetTimeout(timeout)
	}

	return &CatalogClient{
		baseURL: baseURL,
		rest:    rest,
	}
}

// GetCatalog fetches the catalog at the base URL and checks it against the contract.
func (c *CatalogClient) GetCatalog(ctx context.Context, requireDetails bool) (*domain.Catalog, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", domain.ErrUpstreamUnavailable, c.baseURL, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: GET %s: %s", domain.ErrUpstreamStatus, c.baseURL, resp.Status())
	}

	return domain.DecodeCatalog(resp.Body(), requireDetails)
}

// CreateProduct posts {"name": req.Name} to the base URL suffixed with req.ID, verbatim.
func (c *CatalogClient) CreateProduct(ctx context.Context, req domain.ProductCreateRequest) error {
	body, err := json.Marshal(createProductBody{Name: req.Name})
	if err != nil {
		return err
	}

	url := c.baseURL + req.ID

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(url)
	if err != nil {
		return fmt.Errorf("%w: POST %s: %v", domain.ErrUpstreamUnavailable, url, err)
	}

	if resp.IsError() {
		return fmt.Errorf("%w: POST %s: %s", domain.ErrUpstreamStatus, url, resp.Status())
	}

	return nil
}
