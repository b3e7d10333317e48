package indicators

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInsufficientData is returned when the series is shorter than the indicator period requires.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidParams is returned for non-positive periods or negative multipliers.
	ErrInvalidParams = errors.New("invalid indicator parameters")
	// ErrInvalidPrice is returned for non-finite or non-positive prices.
	ErrInvalidPrice = errors.New("invalid price")
)

func insufficient(name string, need, have int) error {
	return fmt.Errorf("%s: need %d prices, have %d: %w", name, need, have, ErrInsufficientData)
}

// ValidatePrices rejects series containing NaN, Inf, zero or negative values.
func ValidatePrices(prices []float64) error {
	for i, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			return fmt.Errorf("price[%d]=%v: %w", i, p, ErrInvalidPrice)
		}
	}
	return nil
}
