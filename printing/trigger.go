package printing

import (
	"sync"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/yichun-tseng/snackshop/models"
)

// Printer produces a kitchen ticket for one order.
type Printer interface {
	PrintTicket(order models.Order) error
}

// Trigger watches the snapshot stream and fires the print side effect once
// per order ID the first time that order is observed pending. The printed
// set lives only as long as the process: after a restart every currently
// pending order prints again. Disabled until the persisted preference turns
// it on.
type Trigger struct {
	printer Printer
	enabled *atomic.Bool
	log     *logrus.Entry

	mu      sync.Mutex
	printed map[string]struct{}
}

func NewTrigger(printer Printer, enabled bool) *Trigger {
	return &Trigger{
		printer: printer,
		enabled: atomic.NewBool(enabled),
		log:     logrus.WithField("component", "printing"),
		printed: make(map[string]struct{}),
	}
}

func (t *Trigger) Enabled() bool {
	return t.enabled.Load()
}

func (t *Trigger) SetEnabled(on bool) {
	t.enabled.Store(on)
}

// OnSnapshot is the trigger's snapshot subscription. Each newly observed
// pending order is marked printed before its ticket is produced, so an
// overlapping snapshot cannot re-enter the print for the same ID.
func (t *Trigger) OnSnapshot(orders []models.Order) {
	if !t.enabled.Load() {
		return
	}

	for _, order := range orders {
		if order.Status != models.StatusPending {
			continue
		}

		t.mu.Lock()
		if _, done := t.printed[order.ID]; done {
			t.mu.Unlock()
			continue
		}
		t.printed[order.ID] = struct{}{}
		t.mu.Unlock()

		if err := t.printer.PrintTicket(order); err != nil {
			t.log.WithError(err).WithField("order_id", order.ID).Error("ticket print failed")
		}
	}
}
