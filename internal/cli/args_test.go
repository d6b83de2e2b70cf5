package cli

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

func TestParseDecision(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Decision
		wantErr bool
	}{
		{"for", models.DecisionFor, false},
		{"YES", models.DecisionFor, false},
		{"1", models.DecisionFor, false},
		{"against", models.DecisionAgainst, false},
		{"0", models.DecisionAgainst, false},
		{"2", models.Decision(2), false},
		{"maybe", 0, true},
		{"256", 0, true},
		{"99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDecision(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDecision_OutOfRange(t *testing.T) {
	for _, in := range []string{"256", "99999999999999999999"} {
		_, err := parseDecision(in)
		assert.ErrorIs(t, err, domain.ErrInvalidDecision, in)
	}

	_, err := parseDecision("maybe")
	assert.NotErrorIs(t, err, domain.ErrInvalidDecision)
}

func TestParseProposalID(t *testing.T) {
	id, err := parseProposalID(nil)
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = parseProposalID([]string{"#3"})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), *id)

	_, err = parseProposalID([]string{"three"})
	assert.ErrorContains(t, err, "invalid proposal id")
}

func TestParseArgs(t *testing.T) {
	_, err := parseAddress("bob")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	amount, err := parseAmount("1.5ether")
	require.NoError(t, err)
	assert.Equal(t, uint256.NewInt(1_500_000_000_000_000_000), amount)

	_, err = parseAmount("-1")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
