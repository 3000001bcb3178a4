package mockapi

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

type latency struct {
	min, max time.Duration
	mu       sync.Mutex
	rnd      *rand.Rand
}

func newLatency(min, max time.Duration) *latency {
	if max < min {
		max = min
	}
	return &latency{min: min, max: max, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (l *latency) next() time.Duration {
	if l.max <= l.min {
		return l.min
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.min + time.Duration(l.rnd.Int63n(int64(l.max-l.min)+1))
}

// wait sleeps for a random duration within [min, max] or until ctx is done.
func (l *latency) wait(ctx context.Context) error {
	d := l.next()
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
