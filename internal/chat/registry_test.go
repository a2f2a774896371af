package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateAndGet(t *testing.T) {
	r := NewRegistry(Options{}, nil)
	s := r.Create()
	require.NotEmpty(t, s.ID())

	got, err := r.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, r.Len())

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry(Options{}, nil)
	s := r.Create()
	assert.Same(t, s, r.GetOrCreate(s.ID()))

	fresh := r.GetOrCreate("unknown")
	assert.NotEqual(t, s.ID(), fresh.ID())
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_SweepEvictsIdleSessions(t *testing.T) {
	clock := &stepClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	r := NewRegistry(Options{Now: clock.Now}, nil).WithTTL(10 * time.Minute)

	idle := r.Create()
	clock.Advance(5 * time.Minute)
	active := r.Create()
	clock.Advance(6 * time.Minute)
	_, err := active.Send("oi")
	require.NoError(t, err)

	assert.Equal(t, 1, r.Sweep())
	_, err = r.Get(idle.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = r.Get(active.ID())
	assert.NoError(t, err)
}

func TestRegistry_Delete(t *testing.T) {
	r := NewRegistry(Options{}, nil)
	s := r.Create()
	r.Delete(s.ID())
	assert.Zero(t, r.Len())
}

func TestRegistry_RunStopsOnCancel(t *testing.T) {
	r := NewRegistry(Options{}, nil).WithInterval(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
