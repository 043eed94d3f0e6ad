package printing

import (
	"fmt"
	"io"
	"sync"

	"github.com/yichun-tseng/snackshop/models"
)

// TicketPrinter renders kitchen tickets to a spool writer, typically the
// device file or pipe a receipt printer daemon reads from.
type TicketPrinter struct {
	mu    sync.Mutex
	spool io.Writer
}

func NewTicketPrinter(spool io.Writer) *TicketPrinter {
	return &TicketPrinter{spool: spool}
}

func (p *TicketPrinter) PrintTicket(order models.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	write := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(p.spool, format, args...)
	}

	write("==== NEW ORDER ====\n")
	write("Table: %s\n", order.TableNumber)
	write("Time:  %s\n", order.CreatedAt.Format("15:04"))
	write("-------------------\n")
	for _, item := range order.Items {
		write("%-12s x %d\n", item.Name, item.Quantity)
	}
	write("-------------------\n")
	write("Total: $%.2f\n\n", order.TotalPrice)
	return err
}
