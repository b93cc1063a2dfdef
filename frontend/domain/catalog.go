package domain

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/goccy/go-json"

	detail "github.com/doitintl/product-catalog/catalogdetail/domain"
)

// Product is one catalog entry as rendered by the frontend.
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Products accepts the two shapes upstreams send: an object keyed by product id
// ({"1": "Widget"}) or an array of names or {id, name} records.
type Products []Product

func (p *Products) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*p = nil
		return nil
	case len(data) > 0 && data[0] == '{':
		var byID map[string]interface{}
		if err := json.Unmarshal(data, &byID); err != nil {
			return err
		}

		out := make(Products, 0, len(byID))
		for id, name := range byID {
			out = append(out, Product{ID: id, Name: fmt.Sprint(name)})
		}

		sort.Slice(out, func(i, j int) bool { return lessID(out[i].ID, out[j].ID) })

		*p = out

		return nil
	case len(data) > 0 && data[0] == '[':
		var items []interface{}
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}

		out := make(Products, 0, len(items))

		for i, item := range items {
			switch v := item.(type) {
			case string:
				out = append(out, Product{Name: v})
			case map[string]interface{}:
				var product Product
				if id, ok := v["id"]; ok {
					product.ID = fmt.Sprint(id)
				}

				if name, ok := v["name"]; ok {
					product.Name = fmt.Sprint(name)
				}

				out = append(out, product)
			default:
				return fmt.Errorf("products[%d]: unexpected %T", i, item)
			}
		}

		*p = out

		return nil
	}

	return fmt.Errorf("products: expected object or array, got %s", data)
}

// lessID orders numeric ids numerically and everything else lexically.
func lessID(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)

	if aErr == nil && bErr == nil {
		return ai < bi
	}

	return a < b
}

// Catalog is the contract the frontend expects from its upstream.
type Catalog struct {
	Products Products              `json:"products"`
	Details  *detail.CatalogDetail `json:"details,omitempty"`
}

// DecodeCatalog parses an upstream body. products must be present; details must
// be present, with a version and vendors, when requireDetails is set.
func DecodeCatalog(body []byte, requireDetails bool) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(body, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}

	if c.Products == nil {
		return nil, fmt.Errorf("%w: missing products", ErrMalformedCatalog)
	}

	if requireDetails {
		switch {
		case c.Details == nil:
			return nil, fmt.Errorf("%w: missing details", ErrMalformedCatalog)
		case c.Details.Version == "":
			return nil, fmt.Errorf("%w: missing details.version", ErrMalformedCatalog)
		case c.Details.Vendors == nil:
			return nil, fmt.Errorf("%w: missing details.vendors", ErrMalformedCatalog)
		}
	}

	return &c, nil
}
