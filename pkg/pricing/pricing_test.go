package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var cfg = Config{TaxRateBP: 200, DeliveryFee: 150, EstimatedDelivery: "30-45 min"}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, int64(2000), LineTotal(1000, nil, 2))
	assert.Equal(t, int64(2600), LineTotal(1000, []int64{250, 50}, 2))
	assert.Equal(t, int64(0), LineTotal(0, nil, 3))
}

func TestTaxRounding(t *testing.T) {
	// 2% of 1025 = 20.5 -> rounds up to 21
	assert.Equal(t, int64(21), cfg.Tax(1025))
	assert.Equal(t, int64(20), cfg.Tax(1024))
	assert.Equal(t, int64(0), cfg.Tax(0))
}

func TestSummarizeDecomposition(t *testing.T) {
	for _, subtotal := range []int64{0, 1, 999, 3000, 123456} {
		s := cfg.Summarize(subtotal)
		assert.Equal(t, subtotal, s.Subtotal)
		assert.Equal(t, cfg.Tax(subtotal), s.Tax)
		assert.Equal(t, cfg.DeliveryFee, s.DeliveryFee)
		assert.Equal(t, s.Subtotal+s.Tax+s.DeliveryFee, s.Total)
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	a := cfg.Summarize(3000)
	b := cfg.Summarize(3000)
	assert.Equal(t, a, b)
}
