package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/yichun-tseng/snackshop/models"
)

// PaidOrders filters the snapshot to paid orders created within the
// inclusive date range [start 00:00:00, end 23:59:59], local time.
func PaidOrders(orders []models.Order, start, end time.Time) []models.Order {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999999, end.Location())

	var paid []models.Order
	for _, order := range orders {
		if order.Status != models.StatusPaid {
			continue
		}
		if order.CreatedAt.Before(from) || order.CreatedAt.After(to) {
			continue
		}
		paid = append(paid, order)
	}
	return paid
}

// WriteCSV renders orders as the reporting export: datetime, table number,
// order id, item summary, total price.
func WriteCSV(w io.Writer, orders []models.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"datetime", "table_number", "order_id", "items", "total_price"}); err != nil {
		return err
	}
	for _, order := range orders {
		record := []string{
			order.CreatedAt.Format("2006-01-02 15:04:05"),
			order.TableNumber,
			order.ID,
			ItemSummary(order.Items),
			strconv.FormatFloat(order.TotalPrice, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ItemSummary renders items as name×quantity pairs joined by "; ".
func ItemSummary(items []models.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s×%d", item.Name, item.Quantity))
	}
	return strings.Join(parts, "; ")
}
