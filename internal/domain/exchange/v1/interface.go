package exchangev1

import (
	orderv1 "github.com/exchange-core/matching-engine/internal/domain/order/v1"
)

// Exchange defines the mutating operations of the matching core.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=exchangev1_mock
type Exchange interface {
	// Submit validates and matches a new order, resting any remainder.
	Submit(id string, side orderv1.Side, price, size int64) error
	// Cancel cancels a resting order by id.
	Cancel(id string) error
}

// Query defines the read-only operations over the current book state.
type Query interface {
	// TotalSizeAtPrice sums remaining sizes of resting orders at exactly price,
	// both sides combined.
	TotalSizeAtPrice(price int64) (int64, error)
	// BestBidPrice returns the highest price with at least one resting buy order.
	BestBidPrice() (int64, error)
	// BestAskPrice returns the lowest price with at least one resting sell order.
	BestAskPrice() (int64, error)
}
