package models

import (
	"testing"
	"time"
)

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("computes total once at creation", func(t *testing.T) {
		items := []OrderItem{
			{Name: "Tea", UnitPrice: 30, Quantity: 2},
			{Name: "Bun", UnitPrice: 45, Quantity: 1},
		}

		order, err := NewOrder("5", items, now)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.TotalPrice != 105 {
			t.Fatalf("expected total 105, got %v", order.TotalPrice)
		}
		if order.Status != StatusPending {
			t.Fatalf("expected status pending, got %s", order.Status)
		}
		if order.ID == "" {
			t.Fatalf("expected order ID to be set")
		}
		if order.RemoteKey != "" {
			t.Fatalf("expected remote key empty before append, got %s", order.RemoteKey)
		}
		if !order.CreatedAt.Equal(now) {
			t.Fatalf("expected createdAt %v, got %v", now, order.CreatedAt)
		}

		// mutating the caller's slice must not reach the order
		items[0].UnitPrice = 999
		if order.Items[0].UnitPrice != 30 {
			t.Fatalf("order items must be copied at creation")
		}
		if order.TotalPrice != 105 {
			t.Fatalf("total must stay fixed after creation, got %v", order.TotalPrice)
		}
	})

	t.Run("assigns unique ids", func(t *testing.T) {
		items := []OrderItem{{Name: "Tea", UnitPrice: 30, Quantity: 1}}
		a, _ := NewOrder("1", items, now)
		b, _ := NewOrder("1", items, now)
		if a.ID == b.ID {
			t.Fatalf("expected distinct ids, both were %s", a.ID)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		cases := []struct {
			name  string
			table string
			items []OrderItem
			want  error
		}{
			{"missing table", "", []OrderItem{{Name: "Tea", UnitPrice: 30, Quantity: 1}}, ErrNoTable},
			{"no items", "5", nil, ErrEmptyOrder},
			{"zero quantity", "5", []OrderItem{{Name: "Tea", UnitPrice: 30, Quantity: 0}}, ErrBadQuantity},
			{"negative quantity", "5", []OrderItem{{Name: "Tea", UnitPrice: 30, Quantity: -1}}, ErrBadQuantity},
			{"negative price", "5", []OrderItem{{Name: "Tea", UnitPrice: -1, Quantity: 1}}, ErrBadUnitPrice},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := NewOrder(tc.table, tc.items, now); err != tc.want {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})
}

func TestOrderOpen(t *testing.T) {
	cases := []struct {
		status Status
		open   bool
	}{
		{StatusPending, true},
		{StatusPreparing, true},
		{StatusCompleted, true},
		{StatusPaid, false},
		{StatusCancelled, false},
	}
	for _, tc := range cases {
		if got := (Order{Status: tc.status}).Open(); got != tc.open {
			t.Errorf("Open() for %s: expected %v, got %v", tc.status, tc.open, got)
		}
	}
}
