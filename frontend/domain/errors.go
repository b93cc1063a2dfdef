package domain

import "errors"

var (
	ErrUpstreamUnavailable = errors.New("product catalog unavailable")
	ErrUpstreamStatus      = errors.New("product catalog answered with an error status")
	ErrMalformedCatalog    = errors.New("malformed product catalog response")
	ErrUnknownVariant      = errors.New("unknown frontend variant")
)
