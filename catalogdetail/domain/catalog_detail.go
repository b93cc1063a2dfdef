package domain

import (
	"errors"
	"fmt"
)

// Version identifies a Product-Detail deployment variant.
type Version string

const (
	V1 Version = "1"
	V2 Version = "2"
)

// SegmentName is the span name every v2 request is recorded under.
const SegmentName = "Product-Detail-V2"

var ErrUnknownVersion = errors.New("unknown catalog detail version")

// CatalogDetail is the catalog metadata a Product-Detail variant serves.
type CatalogDetail struct {
	Version string   `json:"version"`
	Vendors []string `json:"vendors"`
}

// ParseVersion accepts "1", "2", "v1" or "v2".
func ParseVersion(s string) (Version, error) {
	switch s {
	case "1", "v1":
		return V1, nil
	case "2", "v2":
		return V2, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownVersion, s)
}

// Traced reports whether requests to this variant are wrapped in a span.
func (v Version) Traced() bool {
	return v == V2
}

// Detail returns a fresh CatalogDetail for v.
func (v Version) Detail() CatalogDetail {
	switch v {
	case V2:
		return CatalogDetail{
			Version: string(V2),
			Vendors: []string{"ABC.com", "XYZ.com"},
		}
	default:
		return CatalogDetail{
			Version: string(V1),
			Vendors: []string{"ABC.com"},
		}
	}
}
