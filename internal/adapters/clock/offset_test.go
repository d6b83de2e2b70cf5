package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

func TestOffsetClock(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	state := &models.ChainState{}
	c := NewOffsetClock(state)
	c.now = func() time.Time { return base }

	assert.Equal(t, base, c.Now())

	assert.Equal(t, base.Add(25*time.Hour), c.Warp(25*time.Hour))
	assert.Equal(t, 25*time.Hour, state.TimeOffset)

	// negative warps are ignored
	c.Warp(-time.Hour)
	assert.Equal(t, base.Add(25*time.Hour), c.Now())
}
