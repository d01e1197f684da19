package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
)

func TestCurveDelay(t *testing.T) {
	c := core.Curve{Base: 100 * time.Millisecond, Decay: 0.5, Min: 20 * time.Millisecond}

	tests := []struct {
		progress int
		want     time.Duration
	}{
		{-3, 100 * time.Millisecond},
		{0, 100 * time.Millisecond},
		{1, 50 * time.Millisecond},
		{2, 25 * time.Millisecond},
		{3, 20 * time.Millisecond},
		{10, 20 * time.Millisecond},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, c.Delay(tc.progress), "progress %d", tc.progress)
	}

	assert.Zero(t, core.Curve{}.Delay(4), "zero curve collapses to no delay")
}
