package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100", "100"},
		{"0", "0"},
		{"0x64", "100"},
		{"1ether", "1000000000000000000"},
		{"6000 ether", "6000000000000000000000"},
		{"1.5ether", "1500000000000000000"},
		{"0.000000001ether", "1000000000"},
		{"2gwei", "2000000000"},
		{"7wei", "7"},
		{"007", "7"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Dec())
		})
	}
}

func TestParseAmount_Errors(t *testing.T) {
	_, err := ParseAmount("")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseAmount("-5")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseAmount("1.5")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseAmount("1.0000000001gwei")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseAmount("1" + strings.Repeat("0", 80))
	assert.ErrorIs(t, err, ErrOverflow)
}
