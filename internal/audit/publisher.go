package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"syndicate/pkg/domain"
	"syndicate/pkg/requestcontext"
)

// Store is an append-only audit sink. The memory store backs tests; the
// Kafka sink backs production.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListBySubject(ctx context.Context, subject domain.Address) ([]Event, error)
}

// Publisher stamps and fans out audit events. In async mode events are
// buffered and written by a background goroutine; Close drains the buffer.
type Publisher struct {
	store  Store
	logger *slog.Logger

	buf  chan Event
	done chan struct{}
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to asynchronous mode with the given
// buffer size. When the buffer is full events are dropped with a log line
// rather than blocking the mutating operation.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.buf = make(chan Event, size)
	}
}

// WithLogger sets the logger used for drop/failure reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.buf != nil {
		p.done = make(chan struct{})
		go p.drain()
	}
	return p
}

// Emit records an event. Missing timestamps, IDs, and request metadata are
// filled in from the context.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.UserAgent == "" {
		event.UserAgent = requestcontext.UserAgent(ctx)
	}

	if p.buf == nil {
		return p.store.Append(ctx, event)
	}

	select {
	case p.buf <- event:
		return nil
	default:
		p.logger.Warn("audit buffer full, dropping event", "kind", event.Kind)
		return nil
	}
}

// List returns the audit trail for one subject address.
func (p *Publisher) List(ctx context.Context, subject domain.Address) ([]Event, error) {
	return p.store.ListBySubject(ctx, subject)
}

// Close drains any buffered events and stops the background writer.
func (p *Publisher) Close() {
	if p.buf == nil {
		return
	}
	close(p.buf)
	<-p.done
}

func (p *Publisher) drain() {
	defer close(p.done)
	for event := range p.buf {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := p.store.Append(ctx, event); err != nil {
			p.logger.Error("audit append failed", "kind", event.Kind, "error", err)
		}
		cancel()
	}
}
