package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is a single line of an order. Items are immutable once attached;
// the unit price is the price at ordering time, so later menu changes never
// alter historical orders.
type OrderItem struct {
	Name      string  `json:"name" db:"name"`
	UnitPrice float64 `json:"price" db:"unit_price"`
	Quantity  int     `json:"quantity" db:"quantity"`
}

type Order struct {
	ID          string      `json:"id" db:"id"`
	RemoteKey   string      `json:"-" db:"remote_key"` // assigned by the store on append
	TableNumber string      `json:"tableNumber" db:"table_number"`
	Items       []OrderItem `json:"items"`
	TotalPrice  float64     `json:"totalPrice" db:"total_price"`
	Status      Status      `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}

// NewOrder builds a pending order for a table. The total is computed here,
// exactly once; nothing recomputes it afterwards.
func NewOrder(tableNumber string, items []OrderItem, now time.Time) (Order, error) {
	if tableNumber == "" {
		return Order{}, ErrNoTable
	}
	if len(items) == 0 {
		return Order{}, ErrEmptyOrder
	}

	var total float64
	for _, item := range items {
		if item.Quantity <= 0 {
			return Order{}, ErrBadQuantity
		}
		if item.UnitPrice < 0 {
			return Order{}, ErrBadUnitPrice
		}
		total += item.UnitPrice * float64(item.Quantity)
	}

	return Order{
		ID:          uuid.NewString(),
		TableNumber: tableNumber,
		Items:       append([]OrderItem(nil), items...),
		TotalPrice:  total,
		Status:      StatusPending,
		CreatedAt:   now,
	}, nil
}

// Open reports whether the order still counts toward its table's balance.
func (o Order) Open() bool {
	return o.Status != StatusPaid && o.Status != StatusCancelled
}
