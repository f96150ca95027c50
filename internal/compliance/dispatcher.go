package compliance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// deliveryTimeout bounds the time a single sink may take for one event.
const deliveryTimeout = 5 * time.Second

var eventsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "compliance_events_total",
		Help: "How many compliance events were handled, partitioned by kind and result.",
	},
	[]string{"kind", "result"},
)

// Collectors returns the Prometheus collectors of the package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{eventsTotal}
}

var ErrDispatcherClosed = errors.New("the compliance dispatcher is closed")

// Sink writes events to an external system.
type Sink interface {
	Name() string
	Write(ctx context.Context, e Event) error
}

// Dispatcher is a Logger that hands events to its sinks on a background
// goroutine. When the buffer is full, events are dropped and a warning is
// logged instead of blocking the caller.
type Dispatcher struct {
	mu     sync.RWMutex
	closed bool

	events chan Event
	done   chan struct{}
	sinks  []Sink
	logger zerolog.Logger
}

// NewDispatcher starts a dispatcher with a buffer for bufferSize events.
func NewDispatcher(logger zerolog.Logger, bufferSize int, sinks ...Sink) *Dispatcher {
	if bufferSize < 1 {
		bufferSize = 1
	}

	d := &Dispatcher{
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
		sinks:  sinks,
		logger: logger,
	}

	go d.run()
	return d
}

// Log enqueues the event. It never blocks.
func (d *Dispatcher) Log(e Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		eventsTotal.WithLabelValues(string(e.Kind), "dropped").Inc()
		d.logger.Warn().Str("event", e.ID.String()).Str("kind", string(e.Kind)).Msg("compliance dispatcher is closed, event dropped")
		return
	}

	select {
	case d.events <- e:
	default:
		eventsTotal.WithLabelValues(string(e.Kind), "dropped").Inc()
		d.logger.Warn().Str("event", e.ID.String()).Str("kind", string(e.Kind)).Msg("compliance buffer full, event dropped")
	}
}

// Close stops accepting events and waits until all buffered events are
// delivered.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.events)
	d.mu.Unlock()

	<-d.done
}

// Healthy returns an error when the dispatcher no longer accepts events or
// one of its sinks reports a problem.
func (d *Dispatcher) Healthy() error {
	d.mu.RLock()
	closed := d.closed
	d.mu.RUnlock()

	if closed {
		return ErrDispatcherClosed
	}

	for _, s := range d.sinks {
		checker, ok := s.(interface{ Healthy() error })
		if !ok {
			continue
		}

		if err := checker.Healthy(); err != nil {
			return fmt.Errorf("sink %s: %w", s.Name(), err)
		}
	}

	return nil
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for e := range d.events {
		for _, s := range d.sinks {
			d.deliver(s, e)
		}
	}
}

// deliver writes the event to one sink. Errors and panics are logged and
// otherwise ignored.
func (d *Dispatcher) deliver(s Sink, e Event) {
	defer func() {
		if r := recover(); r != nil {
			eventsTotal.WithLabelValues(string(e.Kind), "failed").Inc()
			d.logger.Error().Str("sink", s.Name()).Str("event", e.ID.String()).Msg(fmt.Sprintf("compliance sink panicked: %v", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	if err := s.Write(ctx, e); err != nil {
		eventsTotal.WithLabelValues(string(e.Kind), "failed").Inc()
		d.logger.Error().Err(err).Str("sink", s.Name()).Str("event", e.ID.String()).Msg("compliance event delivery failed")
		return
	}

	eventsTotal.WithLabelValues(string(e.Kind), "delivered").Inc()
}
