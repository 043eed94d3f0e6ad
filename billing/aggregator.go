package billing

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/yichun-tseng/snackshop/models"
)

// TableBill is the open balance of one table: every order on that table
// whose status is neither paid nor cancelled.
type TableBill struct {
	TableNumber string   `json:"tableNumber"`
	TotalAmount float64  `json:"totalAmount"`
	OrderIDs    []string `json:"orderIds"`
}

// Tables partitions the snapshot's open orders by table number. It is a pure
// function of its input: same snapshot in, same bills out, sorted by table
// label for display determinism.
func Tables(orders []models.Order) []TableBill {
	byTable := make(map[string]*TableBill)
	for _, order := range orders {
		if !order.Open() {
			continue
		}
		bill, ok := byTable[order.TableNumber]
		if !ok {
			bill = &TableBill{TableNumber: order.TableNumber}
			byTable[order.TableNumber] = bill
		}
		bill.TotalAmount += order.TotalPrice
		bill.OrderIDs = append(bill.OrderIDs, order.ID)
	}

	bills := make([]TableBill, 0, len(byTable))
	for _, bill := range byTable {
		bills = append(bills, *bill)
	}
	sort.Slice(bills, func(i, j int) bool {
		return bills[i].TableNumber < bills[j].TableNumber
	})
	return bills
}

// Outstanding sums the open balance across all tables.
func Outstanding(bills []TableBill) float64 {
	var total float64
	for _, bill := range bills {
		total += bill.TotalAmount
	}
	return total
}

// Snapshot provides the current materialized order collection.
type Snapshot interface {
	Orders() []models.Order
}

// Settler applies the billing-clear transition to one order.
type Settler interface {
	Settle(ctx context.Context, orderID string) error
}

type Aggregator struct {
	view    Snapshot
	settler Settler
	log     *logrus.Entry
}

func New(view Snapshot, settler Settler) *Aggregator {
	return &Aggregator{
		view:    view,
		settler: settler,
		log:     logrus.WithField("component", "billing"),
	}
}

// Tables returns the per-table open balances for the current snapshot.
func (a *Aggregator) Tables() []TableBill {
	return Tables(a.view.Orders())
}

// ErrSkipped marks orders a table clear never attempted because an earlier
// settle in the same clear failed.
var ErrSkipped = errors.New("not attempted: earlier settle failed")

// ClearResult is the outcome of settling one order during a table clear.
type ClearResult struct {
	OrderID string `json:"orderId"`
	Err     error  `json:"-"`
}

// ClearTable settles the open orders of the table, one patch per order in
// snapshot order. The operation is not atomic: when the settle of order k
// fails, orders before it are already paid and orders from k on remain open.
// The per-order results let the caller retry exactly the failed subset; the
// returned error is a multierror aggregate of the failures, nil when
// everything landed.
func (a *Aggregator) ClearTable(ctx context.Context, tableNumber string) ([]ClearResult, error) {
	var open []models.Order
	for _, order := range a.view.Orders() {
		if order.TableNumber == tableNumber && order.Open() {
			open = append(open, order)
		}
	}

	var results []ClearResult
	var failures *multierror.Error
	aborted := false

	for _, order := range open {
		if aborted {
			results = append(results, ClearResult{OrderID: order.ID, Err: ErrSkipped})
			failures = multierror.Append(failures, fmt.Errorf("order %s: %w", order.ID, ErrSkipped))
			continue
		}

		err := a.settler.Settle(ctx, order.ID)
		results = append(results, ClearResult{OrderID: order.ID, Err: err})
		if err != nil {
			aborted = true
			failures = multierror.Append(failures, err)
			a.log.WithError(err).WithFields(logrus.Fields{
				"table":    tableNumber,
				"order_id": order.ID,
			}).Error("clear table: settle failed")
		}
	}

	if len(results) > 0 {
		a.log.WithFields(logrus.Fields{
			"table":  tableNumber,
			"orders": len(results),
			"failed": failures.ErrorOrNil() != nil,
		}).Info("table cleared")
	}
	return results, failures.ErrorOrNil()
}
