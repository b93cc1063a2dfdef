package domain

import "fmt"

// Variant selects which of the two frontend flavours is served.
type Variant string

const (
	// VariantDetailed renders products together with the catalog vendors and version.
	VariantDetailed Variant = "detailed"
	// VariantBasic renders products only.
	VariantBasic Variant = "basic"
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantDetailed, VariantBasic:
		return v, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

func (v Variant) ShowsDetails() bool {
	return v == VariantDetailed
}

// ProductCreateRequest is the product form posted by the page. It is forwarded as is.
type ProductCreateRequest struct {
	ID   string `form:"id"`
	Name string `form:"name"`
}

// Page is the view model of the index template.
type Page struct {
	Products    Products
	ShowDetails bool
	Vendors     []string
	Version     string
}

func NewPage(c *Catalog, v Variant) Page {
	page := Page{
		Products:    c.Products,
		ShowDetails: v.ShowsDetails(),
	}

	if page.ShowDetails && c.Details != nil {
		page.Vendors = c.Details.Vendors
		page.Version = c.Details.Version
	}

	return page
}
