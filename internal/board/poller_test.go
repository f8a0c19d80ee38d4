package board

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoller_TicksUntilStopped(t *testing.T) {
	var ticks atomic.Int32
	p := NewPoller(5*time.Millisecond, func(context.Context) { ticks.Add(1) })

	p.Start(context.Background())
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, 5*time.Millisecond)

	p.Stop()
	stoppedAt := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stoppedAt, ticks.Load())
	assert.False(t, p.Running())
}

func TestPoller_StopIsIdempotent(t *testing.T) {
	p := NewPoller(time.Hour, func(context.Context) {})
	p.Stop()
	p.Start(context.Background())
	assert.False(t, p.Running(), "a stopped poller must not restart")

	p2 := NewPoller(time.Hour, func(context.Context) {})
	p2.Start(context.Background())
	assert.True(t, p2.Running())
	p2.Stop()
	p2.Stop()
	assert.False(t, p2.Running())
}

func TestPoller_ParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	seen := make(chan context.Context, 1)
	p := NewPoller(5*time.Millisecond, func(c context.Context) {
		select {
		case seen <- c:
		default:
		}
	})
	p.Start(ctx)

	tickCtx := <-seen
	cancel()
	<-tickCtx.Done()
	p.Stop()
}

func TestNewPoller_DefaultInterval(t *testing.T) {
	assert.Equal(t, DefaultPollInterval, NewPoller(0, func(context.Context) {}).Interval())
	assert.Equal(t, 2500*time.Millisecond, DefaultPollInterval)
}
