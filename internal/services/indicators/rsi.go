package indicators

import "math"

// neutralRSI is reported when the window has neither gains nor losses.
const neutralRSI = 50.0

// RSISeries computes the Wilder-smoothed RSI for every index from period onward.
// The first average is the simple mean of the first period changes; later
// averages are smoothed as (prev*(period-1) + x) / period.
// It returns len(prices)-period values, each rounded to two decimals.
func RSISeries(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, ErrInvalidParams
	}
	if len(prices) < period+1 {
		return nil, insufficient("rsi", period+1, len(prices))
	}
	if err := ValidatePrices(prices); err != nil {
		return nil, err
	}

	p := float64(period)
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		gain, loss := change(prices[i-1], prices[i])
		avgGain += gain
		avgLoss += loss
	}
	avgGain /= p
	avgLoss /= p

	out := make([]float64, 0, len(prices)-period)
	out = append(out, rsiValue(avgGain, avgLoss))
	for i := period + 1; i < len(prices); i++ {
		gain, loss := change(prices[i-1], prices[i])
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out = append(out, rsiValue(avgGain, avgLoss))
	}
	return out, nil
}

// RSI returns the most recent RSI value of the series.
func RSI(prices []float64, period int) (float64, error) {
	series, err := RSISeries(prices, period)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1], nil
}

func change(prev, cur float64) (gain, loss float64) {
	d := cur - prev
	if d > 0 {
		return d, 0
	}
	return 0, -d
}

func rsiValue(avgGain, avgLoss float64) float64 {
	switch {
	case avgGain == 0 && avgLoss == 0:
		return neutralRSI
	case avgLoss == 0:
		return 100
	case avgGain == 0:
		return 0
	}
	rs := avgGain / avgLoss
	return round2(100 - 100/(1+rs))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
