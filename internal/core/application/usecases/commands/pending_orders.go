package commands

import (
	"slices"
	"sync"

	"sendsafe/internal/core/domain/model/order"
)

// PendingOrders is the in-memory backlog of orders whose append failed.
// It is safe for concurrent use. Its contents are lost on restart.
type PendingOrders struct {
	mu     sync.Mutex
	orders []*order.Order
}

// NewPendingOrders creates an empty backlog.
func NewPendingOrders() *PendingOrders {
	return &PendingOrders{}
}

// Push appends an order to the backlog.
func (p *PendingOrders) Push(o *order.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orders = append(p.orders, o)
}

// Requeue puts orders back at the front of the backlog, keeping their order,
// so they stay ahead of anything pushed since they were drained.
func (p *PendingOrders) Requeue(orders ...*order.Order) {
	if len(orders) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orders = append(slices.Clone(orders), p.orders...)
}

// Drain removes and returns every queued order, oldest first.
func (p *PendingOrders) Drain() []*order.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.orders
	p.orders = nil
	return out
}

// Len returns the number of queued orders.
func (p *PendingOrders) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.orders)
}
