package dashboard

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/peterldowns/testy/assert"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPollerRunsImmediately(t *testing.T) {
	var market, indicators atomic.Int32
	p := NewPoller(time.Hour, nil)
	assert.NoError(t, p.Add(EndpointMarket, func(context.Context) error { market.Add(1); return nil }))
	assert.NoError(t, p.Add(EndpointIndicators, func(context.Context) error { indicators.Add(1); return nil }))

	assert.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	waitFor(t, 2*time.Second, func() bool { return market.Load() == 1 && indicators.Load() == 1 })
}

func TestPollerDuplicateTask(t *testing.T) {
	p := NewPoller(time.Hour, nil)
	assert.NoError(t, p.Add(EndpointMarket, func(context.Context) error { return nil }))
	assert.Error(t, p.Add(EndpointMarket, func(context.Context) error { return nil }))
}

func TestPollerStopEndpointIsIndependent(t *testing.T) {
	var market, indicators atomic.Int32
	p := NewPoller(time.Hour, nil)
	assert.NoError(t, p.Add(EndpointMarket, func(context.Context) error { market.Add(1); return nil }))
	assert.NoError(t, p.Add(EndpointIndicators, func(context.Context) error { indicators.Add(1); return nil }))
	assert.NoError(t, p.Start(context.Background()))

	p.StopEndpoint(EndpointMarket)
	assert.False(t, p.Running(EndpointMarket))
	assert.True(t, p.Running(EndpointIndicators))

	p.Stop()
	assert.False(t, p.Running(EndpointIndicators))
}

func TestPollerStopCancelsInFlight(t *testing.T) {
	started := make(chan struct{})
	p := NewPoller(time.Hour, nil)
	assert.NoError(t, p.Add(EndpointIndicators, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}))
	assert.NoError(t, p.Start(context.Background()))
	<-started

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("stop did not cancel the in-flight poll")
	}
}

func TestPollerTicks(t *testing.T) {
	var n atomic.Int32
	p := NewPoller(time.Second, nil)
	assert.NoError(t, p.Add(EndpointMarket, func(context.Context) error { n.Add(1); return nil }))
	assert.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	waitFor(t, 5*time.Second, func() bool { return n.Load() >= 2 })
}
