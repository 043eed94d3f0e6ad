package export

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yichun-tseng/snackshop/models"
)

func paidOrder(id string, createdAt time.Time) models.Order {
	return models.Order{
		ID:          id,
		TableNumber: "5",
		Items: []models.OrderItem{
			{Name: "Tea", UnitPrice: 30, Quantity: 2},
			{Name: "Bun", UnitPrice: 45, Quantity: 1},
		},
		TotalPrice: 105,
		Status:     models.StatusPaid,
		CreatedAt:  createdAt,
	}
}

func TestPaidOrders(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)

	t.Run("range is inclusive on both day boundaries", func(t *testing.T) {
		orders := []models.Order{
			paidOrder("first-second", time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)),
			paidOrder("last-second", time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local)),
			paidOrder("too-early", time.Date(2026, 7, 31, 23, 59, 59, 0, time.Local)),
			paidOrder("too-late", time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)),
		}

		got := PaidOrders(orders, start, end)
		if len(got) != 2 || got[0].ID != "first-second" || got[1].ID != "last-second" {
			t.Fatalf("expected boundary orders only, got %+v", got)
		}
	})

	t.Run("only paid orders are exported", func(t *testing.T) {
		inRange := time.Date(2026, 8, 15, 12, 0, 0, 0, time.Local)
		orders := []models.Order{
			paidOrder("paid", inRange),
		}
		for _, status := range []models.Status{models.StatusPending, models.StatusPreparing, models.StatusCompleted, models.StatusCancelled} {
			o := paidOrder("skip-"+string(status), inRange)
			o.Status = status
			orders = append(orders, o)
		}

		got := PaidOrders(orders, start, end)
		if len(got) != 1 || got[0].ID != "paid" {
			t.Fatalf("expected only the paid order, got %+v", got)
		}
	})

	t.Run("start date expands to midnight even when given mid-day", func(t *testing.T) {
		orders := []models.Order{
			paidOrder("morning", time.Date(2026, 8, 1, 6, 0, 0, 0, time.Local)),
		}
		midDayStart := time.Date(2026, 8, 1, 18, 30, 0, 0, time.Local)
		got := PaidOrders(orders, midDayStart, end)
		if len(got) != 1 {
			t.Fatalf("expected the morning order included, got %+v", got)
		}
	})
}

func TestWriteCSV(t *testing.T) {
	order := paidOrder("abc123", time.Date(2026, 8, 15, 18, 30, 5, 0, time.Local))

	var out strings.Builder
	if err := WriteCSV(&out, []models.Order{order}); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %q", out.String())
	}
	if lines[0] != "datetime,table_number,order_id,items,total_price" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "2026-08-15 18:30:05,5,abc123,Tea×2; Bun×1,105.00" {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestItemSummary(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Tea", UnitPrice: 30, Quantity: 2},
		{Name: "Bun", UnitPrice: 45, Quantity: 1},
	}
	if got := ItemSummary(items); got != "Tea×2; Bun×1" {
		t.Fatalf("expected joined summary, got %q", got)
	}
	if got := ItemSummary(nil); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
}

type brokenWriter struct{ err error }

func (w brokenWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteCSVReportsWriterFailure(t *testing.T) {
	cause := errors.New("disk full")
	order := paidOrder("abc123", time.Date(2026, 8, 15, 18, 30, 5, 0, time.Local))

	err := WriteCSV(brokenWriter{err: cause}, []models.Order{order})
	if !errors.Is(err, cause) {
		t.Fatalf("expected the writer failure surfaced, got %v", err)
	}
}
