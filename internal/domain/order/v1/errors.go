package orderv1

import "errors"

var (
	// ErrDuplicateOrder is returned when a submitted id was already accepted
	// at some point, including ids of executed and cancelled orders.
	ErrDuplicateOrder = errors.New("order id already exists")
	// ErrInvalidPrice is returned for a zero or negative price.
	ErrInvalidPrice = errors.New("price must be positive")
	// ErrInvalidSize is returned for a zero or negative size.
	ErrInvalidSize = errors.New("size must be positive")
	// ErrInvalidSide is returned when side is neither buy nor sell.
	ErrInvalidSide = errors.New("invalid side")
	// ErrOrderNotFound is returned when the id was never accepted.
	ErrOrderNotFound = errors.New("order does not exist")
	// ErrOrderExecuted is returned when cancelling a fully matched order.
	ErrOrderExecuted = errors.New("order already executed")
	// ErrOrderCancelled is returned when cancelling an order twice.
	ErrOrderCancelled = errors.New("order already cancelled")
	// ErrNoBuyOrders is returned by best-price queries on an empty bid side.
	ErrNoBuyOrders = errors.New("no resting buy orders")
	// ErrNoSellOrders is returned by best-price queries on an empty ask side.
	ErrNoSellOrders = errors.New("no resting sell orders")
)
