package money

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int64
	}{
		{"whole rupees", 40, 4000},
		{"two decimals", 99.99, 9999},
		{"float noise", 0.1 + 0.2, 30},
		{"half rounds up", 0.005, 1},
		{"below half rounds down", 0.004, 0},
		{"negative half rounds away from zero", -0.005, -1},
		{"large", 123456789.12, 12345678912},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinorUnits(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToMinorUnits_Invalid(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e300} {
		_, err := ToMinorUnits(v)
		assert.ErrorIs(t, err, common.ErrInvalidAmount, "value %v", v)
	}
}

func TestParseDisplay(t *testing.T) {
	got, err := ParseDisplay(" 40.5 ")
	require.NoError(t, err)
	assert.Equal(t, int64(4050), got)

	_, err = ParseDisplay("forty")
	assert.ErrorIs(t, err, common.ErrInvalidAmount)
}

func TestToDisplayUnits(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{6000, "60.00"},
		{10001, "100.01"},
		{-5, "-0.05"},
		{-12345, "-123.45"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToDisplayUnits(tt.in))
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "₹100.00", Format(10000))
}

func TestRoundTrip_String(t *testing.T) {
	values := []int64{0, 1, -1, 99, 100, 6000, 10000, math.MaxInt64, math.MinInt64}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		values = append(values, r.Int63()-r.Int63())
	}

	for _, m := range values {
		got, err := ParseDisplay(ToDisplayUnits(m))
		require.NoError(t, err)
		require.Equal(t, m, got, "display %q", ToDisplayUnits(m))
	}
}

func TestRoundTrip_Float(t *testing.T) {
	// Amounts arrive from JSON as float64. Up to 2^40 paise the display
	// string has at most 13 significant digits, well inside float64 precision.
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		m := r.Int63n(1 << 40)
		f, err := strconv.ParseFloat(ToDisplayUnits(m), 64)
		require.NoError(t, err)

		got, err := ToMinorUnits(f)
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 40.5, ToFloat(4050))
	assert.Equal(t, 0.01, ToFloat(1))
	assert.Equal(t, -0.05, ToFloat(-5))

	r := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		m := r.Int63n(1 << 40)
		got, err := ToMinorUnits(ToFloat(m))
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}
