package models

import "errors"

var (
	// ErrUpstreamUnavailable marks network or API failures of the market data provider.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrMalformedPayload marks upstream responses that cannot be parsed into valid values.
	ErrMalformedPayload = errors.New("malformed upstream payload")
)
