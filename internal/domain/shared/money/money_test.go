package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		raw    string
		cents  int64
		hasErr bool
	}{
		{raw: "150.00", cents: 15000},
		{raw: "150", cents: 15000},
		{raw: "150.5", cents: 15050},
		{raw: "0.99", cents: 99},
		{raw: "-12.25", cents: -1225},
		{raw: "1.234", hasErr: true},
		{raw: "", hasErr: true},
		{raw: "abc", hasErr: true},
	}
	for _, tc := range cases {
		m, err := ParseDecimal(tc.raw, "USD")
		if tc.hasErr {
			assert.Error(t, err, "ParseDecimal(%q)", tc.raw)
			continue
		}
		assert.NoError(t, err, "ParseDecimal(%q)", tc.raw)
		assert.Equal(t, tc.cents, m.Amount, "ParseDecimal(%q)", tc.raw)
	}
}

func TestDecimalFormatting(t *testing.T) {
	assert.Equal(t, "380.00", Must(38000, "USD").Decimal())
	assert.Equal(t, "0.05", Must(5, "USD").Decimal())
	assert.Equal(t, "-1.25", Must(-125, "USD").Decimal())
	assert.Equal(t, "644.00 USD", Must(64400, "USD").String())
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, raw := range []string{"0.00", "100.00", "125.50", "9999.99"} {
		m, err := ParseDecimal(raw, "USD")
		assert.NoError(t, err)
		assert.Equal(t, raw, m.Decimal())
	}
}

func TestMulRatio(t *testing.T) {
	// 100.00 * 1.25 = 125.00 exactly
	assert.Equal(t, int64(12500), Must(10000, "USD").MulRatio(5, 4).Amount)
	// 99.99 * 1.25 = 124.9875, rounds half away from zero to 124.99
	assert.Equal(t, int64(12499), Must(9999, "USD").MulRatio(5, 4).Amount)
	assert.Equal(t, int64(-12499), Must(-9999, "USD").MulRatio(5, 4).Amount)
}

func TestAddCurrencyMismatch(t *testing.T) {
	_, err := Must(100, "USD").Add(Must(100, "EUR"))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)

	sum, err := Must(100, "USD").Add(Must(25, "USD"))
	assert.NoError(t, err)
	assert.Equal(t, int64(125), sum.Amount)
}

func TestNewRejectsBadCurrency(t *testing.T) {
	_, err := New(100, "US")
	assert.ErrorIs(t, err, ErrInvalidCurrency)

	m, err := New(100, "usd")
	assert.NoError(t, err)
	assert.Equal(t, "USD", m.Currency)
}
