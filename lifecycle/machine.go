package lifecycle

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yichun-tseng/snackshop/models"
)

// View is the read side the machine validates against: the current
// materialized snapshot.
type View interface {
	Find(orderID string) (models.Order, bool)
}

// Patcher is the write side: a single-field status patch on the remote store.
type Patcher interface {
	PatchStatus(ctx context.Context, remoteKey string, status models.Status) error
}

// Machine is the sole authority on order status transitions. Illegal
// transitions are rejected before any write is issued; legal ones become
// exactly one patch, and the in-memory view is left untouched until the
// store broadcasts the change back.
type Machine struct {
	view    View
	patcher Patcher
	log     *logrus.Entry
}

func New(view View, patcher Patcher) *Machine {
	return &Machine{
		view:    view,
		patcher: patcher,
		log:     logrus.WithField("component", "lifecycle"),
	}
}

// Advance applies a kitchen transition: pending→preparing, pending→cancelled,
// preparing→completed, preparing→cancelled, completed→paid.
func (m *Machine) Advance(ctx context.Context, orderID string, next models.Status) error {
	order, ok := m.view.Find(orderID)
	if !ok {
		return models.ErrUnknownOrder
	}
	if !next.IsValid() {
		return fmt.Errorf("%w: unknown status %q", models.ErrInvalidTransition, next)
	}
	if !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, order.Status, next)
	}

	if err := m.patcher.PatchStatus(ctx, order.RemoteKey, next); err != nil {
		m.log.WithError(err).WithField("order_id", orderID).Error("status patch failed")
		return err
	}

	m.log.WithFields(logrus.Fields{
		"order_id": orderID,
		"from":     order.Status,
		"to":       next,
	}).Info("order status advanced")
	return nil
}

// Settle applies the billing-clear transition to paid. Unlike Advance it is
// legal from any non-terminal state, so clearing a table pays out orders
// that never reached completed.
func (m *Machine) Settle(ctx context.Context, orderID string) error {
	order, ok := m.view.Find(orderID)
	if !ok {
		return models.ErrUnknownOrder
	}
	if !order.Status.Settleable() {
		return fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, order.Status, models.StatusPaid)
	}

	if err := m.patcher.PatchStatus(ctx, order.RemoteKey, models.StatusPaid); err != nil {
		m.log.WithError(err).WithField("order_id", orderID).Error("settle patch failed")
		return err
	}

	m.log.WithFields(logrus.Fields{
		"order_id": orderID,
		"from":     order.Status,
	}).Info("order settled")
	return nil
}
