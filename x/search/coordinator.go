// Package search turns a stream of typed search terms into hero result batches
package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/tourofheroes/core"
)

var tracer = otel.Tracer("search")

// Lookup is the collaborator asked for heroes matching a term
type Lookup interface {
	Search(ctx context.Context, term string) ([]core.Hero, error)
}

// LookupFunc adapts a plain function to Lookup
type LookupFunc func(ctx context.Context, term string) ([]core.Hero, error)

func (f LookupFunc) Search(ctx context.Context, term string) ([]core.Hero, error) {
	return f(ctx, term)
}

// Batch is one delivered result. Heroes is never nil
type Batch struct {
	Term   string
	Heroes []core.Hero
}

type Option func(*Coordinator)

// WithQuietPeriod sets how long input has to stay quiet before a lookup
func WithQuietPeriod(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.quiet = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Coordinator accepts raw search terms and feeds every subscription.
// Each subscription runs its own debounce / distinct / latest-wins pipeline
// over the terms submitted after it subscribed
type Coordinator struct {
	lookup Lookup
	quiet  time.Duration
	logger *slog.Logger

	mu   sync.Mutex
	subs map[*subscription]struct{}
}

// NewCoordinator creates a coordinator backed by lookup
func NewCoordinator(lookup Lookup, opts ...Option) *Coordinator {
	c := &Coordinator{
		lookup: lookup,
		quiet:  core.DefaultQuietPeriod,
		logger: slog.Default(),
		subs:   make(map[*subscription]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit hands the next raw term to every subscription. it never blocks
func (c *Coordinator) Submit(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for sub := range c.subs {
		sub.offer(term)
	}
}

// Subscribe starts a pipeline and returns its batches.
// the channel is closed once ctx is done
func (c *Coordinator) Subscribe(ctx context.Context) <-chan Batch {
	sub := &subscription{
		coordinator: c,
		out:         make(chan Batch),
		signal:      make(chan struct{}, 1),
		completions: make(chan completion),
	}

	c.mu.Lock()
	c.subs[sub] = struct{}{}
	c.mu.Unlock()

	go func() {
		sub.run(ctx)

		c.mu.Lock()
		delete(c.subs, sub)
		c.mu.Unlock()

		close(sub.out)
	}()

	return sub.out
}

type completion struct {
	seq    uint64
	term   string
	heroes []core.Hero
	err    error
}

type subscription struct {
	coordinator *Coordinator
	out         chan Batch

	// intake mailbox. only the newest term matters to the debounce
	mu     sync.Mutex
	latest string
	signal chan struct{}

	completions chan completion

	// owned by run
	pending        string
	lastDispatched string
	inFlight       bool
	seq            uint64
	cancel         context.CancelFunc
}

func (s *subscription) offer(term string) {
	s.mu.Lock()
	s.latest = term
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *subscription) run(ctx context.Context) {
	var timer *time.Timer
	var quiet <-chan time.Time

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if s.cancel != nil {
			s.cancel()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case <-s.signal:
			s.mu.Lock()
			s.pending = s.latest
			s.mu.Unlock()

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(s.coordinator.quiet)
			quiet = timer.C

		case <-quiet:
			quiet = nil
			if !s.fire(ctx, s.pending) {
				return
			}

		case done := <-s.completions:
			if done.seq != s.seq {
				staleDiscarded.Inc()
				continue
			}

			s.inFlight = false
			if s.cancel != nil {
				s.cancel()
				s.cancel = nil
			}

			heroes := done.heroes
			if done.err != nil {
				failedLookups.Inc()
				s.coordinator.logger.ErrorContext(
					ctx, "search lookup failed",
					slog.String("term", done.term),
					slog.String("error", done.err.Error()),
				)
				heroes = nil
			}
			if heroes == nil {
				heroes = []core.Hero{}
			}

			if !s.deliver(ctx, Batch{Term: done.term, Heroes: heroes}) {
				return
			}
		}
	}
}

// fire runs once the input went quiet. it returns false when ctx ended during delivery
func (s *subscription) fire(ctx context.Context, term string) bool {
	if s.inFlight && term == s.lastDispatched {
		suppressedDuplicates.Inc()
		return true
	}

	// a new surviving term invalidates whatever is in flight
	s.seq++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.lastDispatched = term

	if term == "" {
		s.inFlight = false
		emptyShortCircuits.Inc()
		return s.deliver(ctx, Batch{Term: term, Heroes: []core.Hero{}})
	}

	s.inFlight = true
	dispatchedLookups.Inc()

	lookupCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	seq := s.seq

	go func() {
		spanCtx, span := tracer.Start(lookupCtx, "Search.Coordinator.Lookup")
		span.SetAttributes(attribute.String("term", term))
		heroes, err := s.coordinator.lookup.Search(spanCtx, term)
		if err != nil {
			span.RecordError(err)
		}
		span.End()

		select {
		case s.completions <- completion{seq: seq, term: term, heroes: heroes, err: err}:
		case <-lookupCtx.Done():
			staleDiscarded.Inc()
		}
	}()

	return true
}

func (s *subscription) deliver(ctx context.Context, batch Batch) bool {
	select {
	case s.out <- batch:
		return true
	case <-ctx.Done():
		return false
	}
}
