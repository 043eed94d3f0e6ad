package ordersync

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/yichun-tseng/snackshop/models"
	"github.com/yichun-tseng/snackshop/store"
)

// Client maintains this process's materialized view of the shared order
// collection. The view is read-only and wholly replaced on every broadcast;
// writes go straight to the store and become visible only once the store
// echoes them back through the snapshot stream.
type Client struct {
	store     store.RemoteOrderStore
	log       *logrus.Entry
	now       func() time.Time
	connected *atomic.Bool

	mu          sync.RWMutex
	snapshot    []models.Order
	subscribers []func([]models.Order)
	unsubscribe func()
}

func New(st store.RemoteOrderStore) *Client {
	return &Client{
		store:     st,
		log:       logrus.WithField("component", "ordersync"),
		now:       time.Now,
		connected: atomic.NewBool(false),
	}
}

// OnSnapshot registers a subscriber for snapshot-changed events. Subscribers
// must be registered before Start; they are invoked in registration order on
// every broadcast, including the initial one.
func (c *Client) OnSnapshot(fn func([]models.Order)) {
	c.mu.Lock()
	c.subscribers = append(c.subscribers, fn)
	c.mu.Unlock()
}

// Start subscribes to the store. Connectivity goes up with the first
// delivered snapshot and down whenever the stream reports an error.
func (c *Client) Start() error {
	unsubscribe, err := c.store.Subscribe(c.handleSnapshot, c.handleError)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.unsubscribe = unsubscribe
	c.mu.Unlock()
	return nil
}

// Close releases the store subscription. Safe to call more than once.
func (c *Client) Close() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	c.connected.Store(false)
}

func (c *Client) handleSnapshot(orders []models.Order) {
	c.connected.Store(true)

	c.mu.Lock()
	c.snapshot = orders
	subscribers := append(([]func([]models.Order))(nil), c.subscribers...)
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn(orders)
	}
}

func (c *Client) handleError(err error) {
	c.connected.Store(false)
	c.log.WithError(err).Warn("order stream disconnected")
}

// Connected reports whether the snapshot stream is currently believed live.
func (c *Client) Connected() bool {
	return c.connected.Load()
}

// Orders returns a copy of the current snapshot. The result is never nil so
// an empty collection still serializes as a JSON array.
func (c *Client) Orders() []models.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	orders := make([]models.Order, len(c.snapshot))
	copy(orders, c.snapshot)
	return orders
}

// Find looks an order up by its client-generated ID in the current snapshot.
func (c *Client) Find(orderID string) (models.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, order := range c.snapshot {
		if order.ID == orderID {
			return order, true
		}
	}
	return models.Order{}, false
}

// CreateOrder builds a pending order and appends it to the store. The local
// snapshot is not optimistically updated; the order shows up when the store
// broadcasts it back.
func (c *Client) CreateOrder(ctx context.Context, tableNumber string, items []models.OrderItem) (models.Order, error) {
	order, err := models.NewOrder(tableNumber, items, c.now())
	if err != nil {
		return models.Order{}, err
	}

	key, err := c.store.Append(ctx, order)
	if err != nil {
		c.log.WithError(err).WithField("table", tableNumber).Error("order append failed")
		return models.Order{}, err
	}
	order.RemoteKey = key

	c.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"table":    tableNumber,
		"total":    order.TotalPrice,
	}).Info("order submitted")
	return order, nil
}

// PatchStatus issues a single-field status patch for one record.
func (c *Client) PatchStatus(ctx context.Context, remoteKey string, status models.Status) error {
	return c.store.PatchStatus(ctx, remoteKey, status)
}
