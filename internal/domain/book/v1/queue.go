package bookv1

import (
	"container/heap"

	orderv1 "github.com/exchange-core/matching-engine/internal/domain/order/v1"
)

// Queue is the priority ordering over one side of the book. Bids rank by
// price descending, asks by price ascending; equal prices fall back to the
// engine-assigned sequence, so arrival order breaks ties.
//
// Cancelled orders are not removed eagerly. They stay queued as tombstones
// until they surface at the head, where the caller discards them.
type Queue struct {
	side    orderv1.Side
	entries orderHeap
}

// NewQueue creates an empty queue for the given side.
func NewQueue(side orderv1.Side) *Queue {
	q := &Queue{
		side: side,
		entries: orderHeap{
			less: priorityFor(side),
		},
	}
	heap.Init(&q.entries)
	return q
}

// Side returns the side this queue holds.
func (q *Queue) Side() orderv1.Side {
	return q.side
}

// Len returns the number of queued entries, tombstones included.
func (q *Queue) Len() int {
	return q.entries.Len()
}

// Push queues an order at its priority position.
func (q *Queue) Push(o *orderv1.Order) {
	heap.Push(&q.entries, o)
}

// Peek returns the highest-priority entry without removing it, or nil when
// the queue is empty.
func (q *Queue) Peek() *orderv1.Order {
	if q.entries.Len() == 0 {
		return nil
	}
	return q.entries.orders[0]
}

// Pop removes and returns the highest-priority entry, or nil when the queue
// is empty.
func (q *Queue) Pop() *orderv1.Order {
	if q.entries.Len() == 0 {
		return nil
	}
	return heap.Pop(&q.entries).(*orderv1.Order)
}

// Scan visits every queued entry in unspecified order, tombstones included.
func (q *Queue) Scan(visit func(o *orderv1.Order)) {
	for _, o := range q.entries.orders {
		visit(o)
	}
}

// Ordered returns the currently-resting entries in priority order without
// draining the queue. Tombstones are skipped but left in place.
func (q *Queue) Ordered() []*orderv1.Order {
	tmp := orderHeap{
		orders: make([]*orderv1.Order, len(q.entries.orders)),
		less:   q.entries.less,
	}
	copy(tmp.orders, q.entries.orders)
	heap.Init(&tmp)

	ordered := make([]*orderv1.Order, 0, tmp.Len())
	for tmp.Len() > 0 {
		o := heap.Pop(&tmp).(*orderv1.Order)
		if o.IsResting() {
			ordered = append(ordered, o)
		}
	}
	return ordered
}

func priorityFor(side orderv1.Side) func(a, b *orderv1.Order) bool {
	if side == orderv1.SideBuy {
		return bidPriority
	}
	return askPriority
}

func bidPriority(a, b *orderv1.Order) bool {
	if a.Price == b.Price {
		return a.Sequence < b.Sequence
	}
	return a.Price > b.Price
}

func askPriority(a, b *orderv1.Order) bool {
	if a.Price == b.Price {
		return a.Sequence < b.Sequence
	}
	return a.Price < b.Price
}

// orderHeap implements heap.Interface over orders with a side-specific
// comparator.
type orderHeap struct {
	orders []*orderv1.Order
	less   func(a, b *orderv1.Order) bool
}

func (h *orderHeap) Len() int {
	return len(h.orders)
}

func (h *orderHeap) Less(i, j int) bool {
	return h.less(h.orders[i], h.orders[j])
}

func (h *orderHeap) Swap(i, j int) {
	h.orders[i], h.orders[j] = h.orders[j], h.orders[i]
}

func (h *orderHeap) Push(x any) {
	h.orders = append(h.orders, x.(*orderv1.Order))
}

func (h *orderHeap) Pop() any {
	old := h.orders
	n := len(old)
	o := old[n-1]
	old[n-1] = nil
	h.orders = old[:n-1]
	return o
}
