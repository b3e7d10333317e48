package dashboard

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"SignalDesk/internal/domain/models"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
)

// Band position labels.
const (
	AboveUpper  = "突破上轨 (超买)"
	BelowLower  = "跌破下轨 (超卖)"
	AboveMiddle = "中轨上方 (偏多)"
	BelowMiddle = "中轨下方 (偏空)"
)

var errNoTicker = errors.New("ticker has no lastPrice")

// MarketView is the display form of the 24h ticker.
type MarketView struct {
	Price  string
	Change string
	High   string
	Low    string
	Volume string
	Up     bool
}

// NewMarketView parses a raw ticker document. Volume is the quote volume in millions.
func NewMarketView(raw []byte) (MarketView, error) {
	if !gjson.ValidBytes(raw) {
		return MarketView{}, errors.New("ticker is not valid json")
	}
	t := gjson.ParseBytes(raw)
	if !t.Get("lastPrice").Exists() {
		return MarketView{}, errNoTicker
	}

	change := t.Get("priceChangePercent").Float()
	v := MarketView{
		Price:  money(t.Get("lastPrice").Float()),
		Change: strconv.FormatFloat(change, 'f', 2, 64),
		High:   money(t.Get("highPrice").Float()),
		Low:    money(t.Get("lowPrice").Float()),
		Volume: humanize.CommafWithDigits(t.Get("quoteVolume").Float()/1e6, 2) + "M",
		Up:     change >= 0,
	}
	if v.Up {
		v.Change = "+" + v.Change
	}
	return v, nil
}

func money(f float64) string {
	return humanize.FormatFloat("#,###.##", f)
}

// IndicatorsView is the display form of /api/indicators.
type IndicatorsView struct {
	RSI        float64
	Kind       models.SignalKind
	Label      string
	Style      string
	BBPosition string
}

func NewIndicatorsView(r models.IndicatorsResponse) IndicatorsView {
	return IndicatorsView{
		RSI:        r.RSI,
		Kind:       r.SignalType,
		Label:      r.SignalText,
		Style:      r.SignalClass,
		BBPosition: BandPosition(r.Price, r.BB),
	}
}

// BandPosition describes where price sits relative to the band.
func BandPosition(price float64, bb models.BollingerSnapshot) string {
	switch {
	case price > bb.Upper:
		return AboveUpper
	case price < bb.Lower:
		return BelowLower
	case price > bb.Middle:
		return AboveMiddle
	default:
		return BelowMiddle
	}
}

// RenderMarket writes one market line.
func RenderMarket(w io.Writer, symbol string, v MarketView) error {
	_, err := fmt.Fprintf(w, "[market] %s $%s %s%% | 24h high $%s low $%s vol $%s\n",
		symbol, v.Price, v.Change, v.High, v.Low, v.Volume)
	return err
}

// RenderIndicators writes one indicators line.
func RenderIndicators(w io.Writer, v IndicatorsView) error {
	_, err := fmt.Fprintf(w, "[indicators] RSI %.2f | %s | %s\n", v.RSI, v.BBPosition, v.Label)
	return err
}
