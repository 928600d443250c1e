package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/tourofheroes/core"
)

type recordingLookup struct {
	mu    sync.Mutex
	calls []string
	fn    func(ctx context.Context, term string) ([]core.Hero, error)
}

func (l *recordingLookup) Search(ctx context.Context, term string) ([]core.Hero, error) {
	l.mu.Lock()
	l.calls = append(l.calls, term)
	l.mu.Unlock()

	if l.fn == nil {
		return []core.Hero{{ID: 1, Name: term}}, nil
	}
	return l.fn(ctx, term)
}

func (l *recordingLookup) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.calls...)
}

func receive(t *testing.T, batches <-chan Batch, timeout time.Duration) (Batch, bool) {
	t.Helper()
	select {
	case b, ok := <-batches:
		return b, ok
	case <-time.After(timeout):
		return Batch{}, false
	}
}

func assertNoBatch(t *testing.T, batches <-chan Batch, wait time.Duration) {
	t.Helper()
	select {
	case b, ok := <-batches:
		if ok {
			t.Fatalf("unexpected batch for %q: %v", b.Term, b.Heroes)
		}
	case <-time.After(wait):
	}
}

func TestRapidTermsDispatchOnlyTheLast(t *testing.T) {
	lookup := &recordingLookup{}
	c := NewCoordinator(lookup)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	batches := c.Subscribe(ctx)

	c.Submit("b")
	time.Sleep(50 * time.Millisecond)
	c.Submit("ba")
	time.Sleep(50 * time.Millisecond)
	c.Submit("bat")
	start := time.Now()

	batch, ok := receive(t, batches, time.Second)
	if assert.True(t, ok) {
		assert.Equal(t, "bat", batch.Term)
		assert.Equal(t, []core.Hero{{ID: 1, Name: "bat"}}, batch.Heroes)
		assert.GreaterOrEqual(t, time.Since(start), 250*time.Millisecond)
	}

	assertNoBatch(t, batches, 400*time.Millisecond)
	assert.Equal(t, []string{"bat"}, lookup.Calls())
}

func TestRepeatWhileInFlightIsSuppressed(t *testing.T) {
	release := make(chan struct{})
	lookup := &recordingLookup{
		fn: func(ctx context.Context, term string) ([]core.Hero, error) {
			<-release
			return []core.Hero{{ID: 7, Name: "Bat"}}, nil
		},
	}
	c := NewCoordinator(lookup, WithQuietPeriod(30*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	batches := c.Subscribe(ctx)

	c.Submit("bat")
	time.Sleep(100 * time.Millisecond)
	c.Submit("bat")
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, []string{"bat"}, lookup.Calls())

	close(release)

	batch, ok := receive(t, batches, time.Second)
	if assert.True(t, ok) {
		assert.Equal(t, "bat", batch.Term)
		assert.Len(t, batch.Heroes, 1)
	}
	assertNoBatch(t, batches, 150*time.Millisecond)
}

func TestRepeatAfterCompletedCycleDispatchesAgain(t *testing.T) {
	lookup := &recordingLookup{}
	c := NewCoordinator(lookup)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	batches := c.Subscribe(ctx)

	c.Submit("cat")
	first, ok := receive(t, batches, time.Second)
	if assert.True(t, ok) {
		assert.Equal(t, "cat", first.Term)
	}
	time.Sleep(100 * time.Millisecond)

	c.Submit("cat")
	second, ok := receive(t, batches, time.Second)
	if assert.True(t, ok) {
		assert.Equal(t, "cat", second.Term)
	}

	assert.Equal(t, []string{"cat", "cat"}, lookup.Calls())
}

func TestEmptyTermShortCircuits(t *testing.T) {
	lookup := &recordingLookup{}
	c := NewCoordinator(lookup, WithQuietPeriod(20*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	batches := c.Subscribe(ctx)

	for i := 0; i < 2; i++ {
		c.Submit("")
		batch, ok := receive(t, batches, time.Second)
		if assert.True(t, ok) {
			assert.Equal(t, "", batch.Term)
			assert.NotNil(t, batch.Heroes)
			assert.Empty(t, batch.Heroes)
		}
	}

	assert.Empty(t, lookup.Calls())
}

func TestSupersededLookupIsNeverDelivered(t *testing.T) {
	releaseSlow := make(chan struct{})
	slowCancelled := make(chan error, 1)

	lookup := &recordingLookup{
		fn: func(ctx context.Context, term string) ([]core.Hero, error) {
			if term == "a" {
				// completes late, regardless of cancellation
				<-releaseSlow
				slowCancelled <- ctx.Err()
				return []core.Hero{{ID: 1, Name: "Abe"}}, nil
			}
			return []core.Hero{{ID: 2, Name: "Abby"}}, nil
		},
	}
	c := NewCoordinator(lookup, WithQuietPeriod(30*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	batches := c.Subscribe(ctx)

	c.Submit("a")
	time.Sleep(100 * time.Millisecond)
	c.Submit("ab")

	batch, ok := receive(t, batches, time.Second)
	if assert.True(t, ok) {
		assert.Equal(t, "ab", batch.Term)
		assert.Equal(t, []core.Hero{{ID: 2, Name: "Abby"}}, batch.Heroes)
	}

	close(releaseSlow)
	assert.Error(t, <-slowCancelled)

	assertNoBatch(t, batches, 150*time.Millisecond)
	assert.Equal(t, []string{"a", "ab"}, lookup.Calls())
}

func TestEmptyTermSupersedesInFlightLookup(t *testing.T) {
	release := make(chan struct{})
	lookup := &recordingLookup{
		fn: func(ctx context.Context, term string) ([]core.Hero, error) {
			<-release
			return []core.Hero{{ID: 3, Name: "Bombasto"}}, nil
		},
	}
	c := NewCoordinator(lookup, WithQuietPeriod(30*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	batches := c.Subscribe(ctx)

	c.Submit("bomb")
	time.Sleep(100 * time.Millisecond)
	c.Submit("")

	batch, ok := receive(t, batches, time.Second)
	if assert.True(t, ok) {
		assert.Equal(t, "", batch.Term)
		assert.Empty(t, batch.Heroes)
	}

	close(release)
	assertNoBatch(t, batches, 150*time.Millisecond)
}

func TestFailedLookupYieldsEmptyBatchAndKeepsRunning(t *testing.T) {
	lookup := &recordingLookup{
		fn: func(ctx context.Context, term string) ([]core.Hero, error) {
			if term == "x" {
				return nil, errors.New("backend unavailable")
			}
			return []core.Hero{{ID: 19, Name: "Magma"}}, nil
		},
	}
	c := NewCoordinator(lookup, WithQuietPeriod(20*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	batches := c.Subscribe(ctx)

	c.Submit("x")
	failed, ok := receive(t, batches, time.Second)
	if assert.True(t, ok) {
		assert.Equal(t, "x", failed.Term)
		assert.NotNil(t, failed.Heroes)
		assert.Empty(t, failed.Heroes)
	}

	c.Submit("ma")
	next, ok := receive(t, batches, time.Second)
	if assert.True(t, ok) {
		assert.Equal(t, "ma", next.Term)
		assert.Equal(t, []core.Hero{{ID: 19, Name: "Magma"}}, next.Heroes)
	}

	assert.Equal(t, []string{"x", "ma"}, lookup.Calls())
}

func TestSubmitNeverBlocks(t *testing.T) {
	c := NewCoordinator(&recordingLookup{}, WithQuietPeriod(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = c.Subscribe(ctx) // nobody reads

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			c.Submit("term")
		}
		c.Submit("other")
		time.Sleep(50 * time.Millisecond)
		c.Submit("again")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("submit blocked")
	}
}

func TestSubscriptionsRunIndependently(t *testing.T) {
	lookup := &recordingLookup{}
	c := NewCoordinator(lookup, WithQuietPeriod(20*time.Millisecond))

	ctx1, cancel1 := context.WithCancel(context.Background())
	first := c.Subscribe(ctx1)

	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	second := c.Subscribe(ctx2)

	c.Submit("ma")

	b1, ok := receive(t, first, time.Second)
	if assert.True(t, ok) {
		assert.Equal(t, "ma", b1.Term)
	}
	b2, ok := receive(t, second, time.Second)
	if assert.True(t, ok) {
		assert.Equal(t, "ma", b2.Term)
	}

	cancel1()
	_, ok = receive(t, first, time.Second)
	assert.False(t, ok, "channel should be closed after cancel")

	c.Submit("dr")
	b3, ok := receive(t, second, time.Second)
	if assert.True(t, ok) {
		assert.Equal(t, "dr", b3.Term)
	}
}
