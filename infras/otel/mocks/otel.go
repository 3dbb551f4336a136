package mocks

import (
	"context"
	"sync"

	"kwagala/infras/otel"
)

// Otel is an in-memory tracer that remembers the span names it was asked to open.
type Otel struct {
	mu    sync.Mutex
	spans []string
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	o.spans = append(o.spans, spanName)
	o.mu.Unlock()

	return ctx, NewScope()
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Spans returns the names of every span opened so far, in order.
func (o *Otel) Spans() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.spans...)
}

func NewOtel() *Otel {
	return &Otel{}
}
