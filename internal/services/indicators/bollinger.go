package indicators

import (
	"math"

	"SignalDesk/internal/domain/models"
)

// BollingerSeries computes the bands for every index from period-1 onward.
// Middle is the simple moving average of the trailing window and the half
// width is k times the population standard deviation of the same window.
func BollingerSeries(prices []float64, period int, k float64) ([]models.BollingerSnapshot, error) {
	if period <= 0 || k < 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return nil, ErrInvalidParams
	}
	if len(prices) < period {
		return nil, insufficient("bollinger", period, len(prices))
	}
	if err := ValidatePrices(prices); err != nil {
		return nil, err
	}

	out := make([]models.BollingerSnapshot, 0, len(prices)-period+1)
	for i := period - 1; i < len(prices); i++ {
		out = append(out, band(prices[i-period+1:i+1], k))
	}
	return out, nil
}

// Bollinger returns the band snapshot at the last index of the series.
func Bollinger(prices []float64, period int, k float64) (models.BollingerSnapshot, error) {
	if period <= 0 || k < 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return models.BollingerSnapshot{}, ErrInvalidParams
	}
	if len(prices) < period {
		return models.BollingerSnapshot{}, insufficient("bollinger", period, len(prices))
	}
	window := prices[len(prices)-period:]
	if err := ValidatePrices(window); err != nil {
		return models.BollingerSnapshot{}, err
	}
	return band(window, k), nil
}

func band(window []float64, k float64) models.BollingerSnapshot {
	n := float64(len(window))
	sum := 0.0
	for _, v := range window {
		sum += v
	}
	mean := sum / n

	sq := 0.0
	for _, v := range window {
		d := v - mean
		sq += d * d
	}
	half := k * math.Sqrt(sq/n)

	return models.BollingerSnapshot{
		Lower:  mean - half,
		Middle: mean,
		Upper:  mean + half,
	}
}
