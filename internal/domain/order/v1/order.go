package orderv1

// Side represents which side of the book an order belongs to.
type Side string

const (
	// SideBuy represents a buy (bid) order.
	SideBuy Side = "buy"
	// SideSell represents a sell (ask) order.
	SideSell Side = "sell"
)

// String returns the side as a plain string.
func (s Side) String() string {
	return string(s)
}

// Opposite returns the side an incoming order of side s is matched against.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// Status represents the lifecycle state of an order.
type Status string

const (
	// StatusResting marks an accepted order that is still eligible for matching.
	StatusResting Status = "resting"
	// StatusCancelled marks an order cancelled while resting. Terminal.
	StatusCancelled Status = "cancelled"
	// StatusExecuted marks an order whose remaining size reached zero. Terminal.
	StatusExecuted Status = "executed"
)

// Order represents a single order for the lifetime of one engine instance.
// ID, Side and Price are fixed at acceptance; Size is the remaining unmatched
// quantity and only ever decreases during matching. Sequence is assigned by
// the engine and breaks price ties in arrival order.
type Order struct {
	ID       string `json:"id"`
	Side     Side   `json:"side"`
	Price    int64  `json:"price"`
	Size     int64  `json:"size"`
	Sequence uint64 `json:"sequence"`
	Status   Status `json:"status"`
}

// NewOrder creates a resting order with the given identity and remaining size.
func NewOrder(id string, side Side, price, size int64, sequence uint64) *Order {
	return &Order{
		ID:       id,
		Side:     side,
		Price:    price,
		Size:     size,
		Sequence: sequence,
		Status:   StatusResting,
	}
}

// IsBuy checks if the order is a buy (bid) order.
func (o *Order) IsBuy() bool {
	return o.Side == SideBuy
}

// IsSell checks if the order is a sell (ask) order.
func (o *Order) IsSell() bool {
	return o.Side == SideSell
}

// IsResting checks if the order is still eligible for matching.
func (o *Order) IsResting() bool {
	return o.Status == StatusResting
}

// IsCancelled checks if the order was cancelled while resting.
func (o *Order) IsCancelled() bool {
	return o.Status == StatusCancelled
}

// IsExecuted checks if the order was fully matched.
func (o *Order) IsExecuted() bool {
	return o.Status == StatusExecuted
}
