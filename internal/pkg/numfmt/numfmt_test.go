package numfmt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"12345", "12,345"},
		{"123456", "1,23,456"},
		{"1234567", "12,34,567"},
		{"123456789", "12,34,56,789"},
		{"12345.5", "12,345.5"},
		{"1234567.89", "12,34,567.89"},
		{"-1234567", "-12,34,567"},
		{"0.5", "0.5"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			d, err := decimal.NewFromString(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, GroupDigits(d))
		})
	}
}

func TestGroupDigitsFloat(t *testing.T) {
	assert.Equal(t, "12,34,567", GroupDigitsFloat(1234567))
	assert.Equal(t, "12,345.5", GroupDigitsFloat(12345.5))
}

func TestParseGrouped_RoundTrip(t *testing.T) {
	for _, in := range []string{"0", "1234567", "12345.5", "-98765.25", "1000000"} {
		t.Run(in, func(t *testing.T) {
			d, err := decimal.NewFromString(in)
			require.NoError(t, err)

			back, err := ParseGrouped(GroupDigits(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(back), "round trip changed %s to %s", d, back)
		})
	}

	t.Run("accepts western grouping too", func(t *testing.T) {
		d, err := ParseGrouped("1,234,567")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1234567).Equal(d))
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ParseGrouped("12,34x")
		assert.Error(t, err)
	})
}
