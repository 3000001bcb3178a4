package mockapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Latency_StaysWithinBounds(t *testing.T) {
	l := newLatency(10*time.Millisecond, 30*time.Millisecond)
	for i := 0; i < 200; i++ {
		d := l.next()
		assert.GreaterOrEqual(t, d, 10*time.Millisecond)
		assert.LessOrEqual(t, d, 30*time.Millisecond)
	}
}

func Test_Latency_HonorsContext(t *testing.T) {
	l := newLatency(time.Hour, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, l.wait(ctx), context.DeadlineExceeded)
	assert.NoError(t, newLatency(0, 0).wait(context.Background()))
}
