package repository

// Interval represents a Binance kline resolution.
type Interval string

const (
	Interval1d Interval = "1d"
	Interval1w Interval = "1w"
	Interval1M Interval = "1M"
)

// IsValidInterval returns true if iv is a supported kline interval.
func IsValidInterval(iv Interval) bool {
	switch iv {
	case Interval1d, Interval1w, Interval1M:
		return true
	default:
		return false
	}
}

// DefaultInterval returns the weekly interval the signal is defined over.
func DefaultInterval() Interval { return Interval1w }

// NormalizeInterval converts raw string to a valid interval (or default).
func NormalizeInterval(s string) Interval {
	if s == "" {
		return DefaultInterval()
	}
	iv := Interval(s)
	if IsValidInterval(iv) {
		return iv
	}
	return DefaultInterval()
}
