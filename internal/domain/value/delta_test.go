package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLengthDelta(t *testing.T) {
	tests := []struct {
		input    string
		amount   float64
		unit     LengthUnit
		negative bool
	}{
		{"+10px", 10, UnitPixel, false},
		{"-10px", 10, UnitPixel, true},
		{"10px", 10, UnitPixel, false},
		{"-5%", 0.05, UnitPercentage, true},
		{" +25% ", 0.25, UnitPercentage, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLengthDelta(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.negative, got.IsNegative)
			assert.Equal(t, tt.unit, got.Inner.Unit)
			assert.InDelta(t, tt.amount, got.Inner.Amount, 1e-9)
		})
	}
}

func TestParseLengthDelta_Errors(t *testing.T) {
	for _, input := range []string{"", "+", "-", "   ", "+abc"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseLengthDelta(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, input, parseErr.Input)
		})
	}
}

func TestDelta_Sign(t *testing.T) {
	up, err := ParseLengthDelta("+3px")
	require.NoError(t, err)
	down, err := ParseLengthDelta("-3px")
	require.NoError(t, err)

	assert.Equal(t, 1.0, up.Sign())
	assert.Equal(t, -1.0, down.Sign())
	assert.Equal(t, "-3px", down.String())
}

func TestDelta_UnmarshalText(t *testing.T) {
	var d LengthDelta
	require.NoError(t, d.UnmarshalText([]byte("-7%")))
	assert.True(t, d.IsNegative)
	assert.InDelta(t, 0.07, d.Inner.Amount, 1e-9)

	var unsupported Delta[int]
	assert.ErrorIs(t, unsupported.UnmarshalText([]byte("+1")), ErrParse)
}

func TestParseDelta_CustomInner(t *testing.T) {
	d, err := ParseDelta("-abc", func(s string) (string, error) { return s, nil })
	require.NoError(t, err)
	assert.Equal(t, "abc", d.Inner)
	assert.True(t, d.IsNegative)
}
