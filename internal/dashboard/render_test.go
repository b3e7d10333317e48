package dashboard

import (
	"bytes"
	"testing"

	"SignalDesk/internal/domain/models"

	"github.com/peterldowns/testy/assert"
)

func TestNewMarketView(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want MarketView
	}{
		{
			name: "down day",
			raw:  `{"lastPrice":"3135.90","priceChangePercent":"-1.262","highPrice":"3240.00","lowPrice":"3100.10","quoteVolume":"1234500000.00"}`,
			want: MarketView{Price: "3,135.90", Change: "-1.26", High: "3,240.00", Low: "3,100.10", Volume: "1,234.5M", Up: false},
		},
		{
			name: "up day",
			raw:  `{"lastPrice":"2000","priceChangePercent":"4.5","highPrice":"2010","lowPrice":"1900","quoteVolume":"45000000"}`,
			want: MarketView{Price: "2,000.00", Change: "+4.50", High: "2,010.00", Low: "1,900.00", Volume: "45M", Up: true},
		},
		{
			name: "unchanged",
			raw:  `{"lastPrice":"2000","priceChangePercent":"0.000","highPrice":"2000","lowPrice":"2000","quoteVolume":"0"}`,
			want: MarketView{Price: "2,000.00", Change: "+0.00", High: "2,000.00", Low: "2,000.00", Volume: "0M", Up: true},
		},
	}

	for _, test := range tests {
		got, err := NewMarketView([]byte(test.raw))
		if err != nil {
			t.Fatalf("%s: unexpected error %v", test.name, err)
		}
		if got != test.want {
			t.Errorf("%s: expected %+v, got %+v", test.name, test.want, got)
		}
	}
}

func TestNewMarketViewErrors(t *testing.T) {
	_, err := NewMarketView([]byte(`{"symbol":"ETHUSDT"}`))
	assert.Error(t, err)
	_, err = NewMarketView([]byte(`not json`))
	assert.Error(t, err)
}

func TestBandPosition(t *testing.T) {
	bb := models.BollingerSnapshot{Lower: 1900, Middle: 2000, Upper: 2100}
	tests := []struct {
		price float64
		want  string
	}{
		{2150, AboveUpper},
		{1850, BelowLower},
		{2050, AboveMiddle},
		{1950, BelowMiddle},
		{2000, BelowMiddle},
		{2100, AboveMiddle},
		{1900, BelowMiddle},
	}
	for _, test := range tests {
		if got := BandPosition(test.price, bb); got != test.want {
			t.Errorf("price %v: expected %s, got %s", test.price, test.want, got)
		}
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := RenderMarket(&buf, "ETHUSDT", MarketView{Price: "3,135.90", Change: "-1.26", High: "3,240.00", Low: "3,100.10", Volume: "812.34M"})
	assert.NoError(t, err)
	assert.Equal(t, "[market] ETHUSDT $3,135.90 -1.26% | 24h high $3,240.00 low $3,100.10 vol $812.34M\n", buf.String())

	buf.Reset()
	view := NewIndicatorsView(models.IndicatorsResponse{
		RSI:        71.234,
		BB:         models.BollingerSnapshot{Lower: 1900, Middle: 2000, Upper: 2100},
		Price:      2150,
		SignalType: models.SignalSell,
		SignalText: "🔥 强逃顶共振 (EXIT)",
	})
	assert.NoError(t, RenderIndicators(&buf, view))
	assert.Equal(t, "[indicators] RSI 71.23 | 突破上轨 (超买) | 🔥 强逃顶共振 (EXIT)\n", buf.String())
}
