package steps

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDelay_Waits(t *testing.T) {
	start := time.Now()
	err := Delay(10*time.Millisecond)(context.Background(), StepParse)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestDelay_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Delay(time.Hour)(ctx, StepParse)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDelay_ZeroIsImmediate(t *testing.T) {
	assert.NoError(t, Delay(0)(context.Background(), StepParse))
}

func TestNoDelay(t *testing.T) {
	assert.NoError(t, NoDelay(context.Background(), StepParse))
}
