package models

// StrategyParams holds every constant shared by the indicator engine and the
// signal classifier.
type StrategyParams struct {
	RSIPeriod  int     `yaml:"rsi_period" default:"14" validate:"gte=1"`
	BBPeriod   int     `yaml:"bb_period" default:"20" validate:"gte=2"`
	BBStdDev   float64 `yaml:"bb_std_dev" default:"2" validate:"gte=0"`
	Overbought float64 `yaml:"overbought" default:"70" validate:"gt=0,lte=100"`
	Oversold   float64 `yaml:"oversold" default:"35" validate:"gte=0,lt=100"`
}

// DefaultStrategyParams returns RSI(14), BB(20, 2) with 70/35 thresholds.
func DefaultStrategyParams() StrategyParams {
	return StrategyParams{
		RSIPeriod:  14,
		BBPeriod:   20,
		BBStdDev:   2,
		Overbought: 70,
		Oversold:   35,
	}
}

// MinCandles is the shortest series both indicators can be computed over.
func (p StrategyParams) MinCandles() int {
	if p.RSIPeriod+1 > p.BBPeriod {
		return p.RSIPeriod + 1
	}
	return p.BBPeriod
}
