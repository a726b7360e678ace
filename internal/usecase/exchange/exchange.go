package exchange

import (
	"fmt"

	bookv1 "github.com/exchange-core/matching-engine/internal/domain/book/v1"
	exchangev1 "github.com/exchange-core/matching-engine/internal/domain/exchange/v1"
	orderv1 "github.com/exchange-core/matching-engine/internal/domain/order/v1"
)

// Exchange is the matching core for a single instrument. It owns both book
// sides and the id index, matches incoming orders under price-time priority
// and answers point-in-time queries about the book.
//
// The engine is single-owner and synchronous: it carries no internal locking,
// and callers that share one instance must serialize access themselves.
type Exchange struct {
	bids         *bookv1.Queue
	asks         *bookv1.Queue
	orders       map[string]*orderv1.Order
	lastSequence uint64
}

var (
	_ exchangev1.Exchange = (*Exchange)(nil)
	_ exchangev1.Query    = (*Exchange)(nil)
)

// NewExchange creates an empty exchange.
func NewExchange() *Exchange {
	return &Exchange{
		bids:   bookv1.NewQueue(orderv1.SideBuy),
		asks:   bookv1.NewQueue(orderv1.SideSell),
		orders: make(map[string]*orderv1.Order),
	}
}

// NewExchangeFromSnapshot rebuilds an exchange from a snapshot of resting
// orders. Sequences are preserved, so the restored book matches in the same
// priority order as the original.
func NewExchangeFromSnapshot(snapshot *bookv1.Snapshot) (*Exchange, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("snapshot cannot be nil")
	}

	e := NewExchange()
	e.lastSequence = snapshot.LastSequence

	for _, bookOrder := range snapshot.Orders {
		if bookOrder.Price <= 0 {
			return nil, fmt.Errorf("%w: order %s has price %d", orderv1.ErrInvalidPrice, bookOrder.OrderID, bookOrder.Price)
		}
		if bookOrder.Size <= 0 {
			return nil, fmt.Errorf("%w: order %s has size %d", orderv1.ErrInvalidSize, bookOrder.OrderID, bookOrder.Size)
		}
		if _, exists := e.orders[bookOrder.OrderID]; exists {
			return nil, fmt.Errorf("%w: %s", orderv1.ErrDuplicateOrder, bookOrder.OrderID)
		}

		o := orderv1.NewOrder(bookOrder.OrderID, bookOrder.Side, bookOrder.Price, bookOrder.Size, bookOrder.Sequence)
		e.orders[o.ID] = o
		e.sideQueue(o.Side).Push(o)

		if o.Sequence > e.lastSequence {
			e.lastSequence = o.Sequence
		}
	}

	return e, nil
}

// Submit validates a new order, matches it against the opposite side and
// rests any unmatched remainder. A rejected submission leaves the engine
// untouched.
func (e *Exchange) Submit(id string, side orderv1.Side, price, size int64) error {
	if _, exists := e.orders[id]; exists {
		return fmt.Errorf("%w: %s", orderv1.ErrDuplicateOrder, id)
	}
	if side != orderv1.SideBuy && side != orderv1.SideSell {
		return fmt.Errorf("%w: %q", orderv1.ErrInvalidSide, side)
	}
	if price <= 0 {
		return fmt.Errorf("%w: got %d", orderv1.ErrInvalidPrice, price)
	}
	if size <= 0 {
		return fmt.Errorf("%w: got %d", orderv1.ErrInvalidSize, size)
	}

	e.lastSequence++
	incoming := orderv1.NewOrder(id, side, price, size, e.lastSequence)
	e.orders[id] = incoming

	e.match(incoming)

	if incoming.Size == 0 {
		incoming.Status = orderv1.StatusExecuted
		return nil
	}
	// A partial fill keeps its original sequence, so the remainder holds its
	// time priority.
	e.sideQueue(side).Push(incoming)
	return nil
}

// match trades the incoming order against the opposite side's best entries
// while prices cross, discarding cancelled tombstones as they surface.
func (e *Exchange) match(incoming *orderv1.Order) {
	opposite := e.sideQueue(incoming.Side.Opposite())

	for incoming.Size > 0 {
		other := opposite.Peek()
		if other == nil {
			break
		}
		if other.IsCancelled() {
			opposite.Pop()
			continue
		}
		if !crosses(incoming, other) {
			// Nothing further down the queue can cross either.
			break
		}

		traded := min(incoming.Size, other.Size)
		incoming.Size -= traded
		other.Size -= traded

		if other.Size == 0 {
			other.Status = orderv1.StatusExecuted
			opposite.Pop()
		}
	}
}

// Cancel cancels a resting order. The order stays queued as a tombstone and
// is discarded the next time it reaches the head of its side.
func (e *Exchange) Cancel(id string) error {
	o, exists := e.orders[id]
	if !exists {
		return fmt.Errorf("%w: %s", orderv1.ErrOrderNotFound, id)
	}
	if o.IsExecuted() {
		return fmt.Errorf("%w: %s", orderv1.ErrOrderExecuted, id)
	}
	if o.IsCancelled() {
		return fmt.Errorf("%w: %s", orderv1.ErrOrderCancelled, id)
	}

	o.Status = orderv1.StatusCancelled
	return nil
}

// TotalSizeAtPrice sums the remaining sizes of resting orders at exactly
// price, both sides combined.
func (e *Exchange) TotalSizeAtPrice(price int64) (int64, error) {
	if price <= 0 {
		return 0, fmt.Errorf("%w: got %d", orderv1.ErrInvalidPrice, price)
	}
	return totalSizeAtPrice(price, e.bids) + totalSizeAtPrice(price, e.asks), nil
}

func totalSizeAtPrice(price int64, q *bookv1.Queue) int64 {
	var total int64
	q.Scan(func(o *orderv1.Order) {
		if o.IsResting() && o.Price == price {
			total += o.Size
		}
	})
	return total
}

// BestBidPrice returns the highest price with at least one resting buy order.
func (e *Exchange) BestBidPrice() (int64, error) {
	head := restingHead(e.bids)
	if head == nil {
		return 0, orderv1.ErrNoBuyOrders
	}
	return head.Price, nil
}

// BestAskPrice returns the lowest price with at least one resting sell order.
func (e *Exchange) BestAskPrice() (int64, error) {
	head := restingHead(e.asks)
	if head == nil {
		return 0, orderv1.ErrNoSellOrders
	}
	return head.Price, nil
}

// restingHead discards cancelled tombstones from the head of q and returns
// the best resting order, or nil when the side is empty. Dropping tombstones
// here is observationally equivalent to dropping them during a later match.
func restingHead(q *bookv1.Queue) *orderv1.Order {
	for {
		head := q.Peek()
		if head == nil {
			return nil
		}
		if head.IsCancelled() {
			q.Pop()
			continue
		}
		return head
	}
}

// BuyOrders returns the resting buy orders in matching-priority order.
func (e *Exchange) BuyOrders() []*orderv1.Order {
	return e.bids.Ordered()
}

// SellOrders returns the resting sell orders in matching-priority order.
func (e *Exchange) SellOrders() []*orderv1.Order {
	return e.asks.Ordered()
}

// Snapshot captures every resting order on both sides together with the
// sequence counter. The snapshot is a value copy and does not alias book
// state.
func (e *Exchange) Snapshot() *bookv1.Snapshot {
	var bookOrders []bookv1.BookOrder

	for _, o := range append(e.BuyOrders(), e.SellOrders()...) {
		bookOrders = append(bookOrders, bookv1.BookOrder{
			OrderID:  o.ID,
			Side:     o.Side,
			Price:    o.Price,
			Size:     o.Size,
			Sequence: o.Sequence,
		})
	}

	return &bookv1.Snapshot{
		LastSequence: e.lastSequence,
		Orders:       bookOrders,
	}
}

func (e *Exchange) sideQueue(side orderv1.Side) *bookv1.Queue {
	if side == orderv1.SideBuy {
		return e.bids
	}
	return e.asks
}

func crosses(incoming, resting *orderv1.Order) bool {
	if incoming.IsBuy() {
		return resting.Price <= incoming.Price
	}
	return resting.Price >= incoming.Price
}
