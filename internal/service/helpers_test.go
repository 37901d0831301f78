package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/utafrali/storefront/internal/domain"
)

// recordingPublisher captures emitted events so tests can assert on them.
type recordingPublisher struct {
	mu      sync.Mutex
	updated []*domain.Cart
	cleared []*domain.Cart
	placed  []*domain.Order
}

func (p *recordingPublisher) CartUpdated(_ context.Context, cart *domain.Cart) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updated = append(p.updated, cart)
}

func (p *recordingPublisher) CartCleared(_ context.Context, cart *domain.Cart) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cleared = append(p.cleared, cart)
}

func (p *recordingPublisher) OrderPlaced(_ context.Context, order *domain.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.placed = append(p.placed, order)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
