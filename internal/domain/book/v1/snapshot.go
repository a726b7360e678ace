package bookv1

import (
	orderv1 "github.com/exchange-core/matching-engine/internal/domain/order/v1"
)

// BookOrder is the snapshot form of a single resting order.
type BookOrder struct {
	OrderID  string       `json:"orderID"`
	Side     orderv1.Side `json:"side"`
	Price    int64        `json:"price"`
	Size     int64        `json:"size"`
	Sequence uint64       `json:"sequence"`
}

// Snapshot is a point-in-time copy of every resting order on both sides,
// together with the sequence counter needed to resume accepting orders with
// the same tie-break ordering.
type Snapshot struct {
	LastSequence uint64      `json:"lastSequence"`
	Orders       []BookOrder `json:"orders"`
}
