package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/yichun-tseng/snackshop/models"
)

const ordersChannel = "orders_changed"

// Postgres is the durable RemoteOrderStore. A row trigger installed by the
// migrations notifies the orders channel on every insert or update, and
// Subscribe re-reads the whole collection on each notification. Change
// payloads stay O(collection size); that is the replication model, not an
// accident.
type Postgres struct {
	db  *sql.DB
	dsn string
	log *logrus.Entry
}

func NewPostgres(db *sql.DB, dsn string) *Postgres {
	return &Postgres{
		db:  db,
		dsn: dsn,
		log: logrus.WithField("component", "store.postgres"),
	}
}

func (p *Postgres) Append(ctx context.Context, order models.Order) (string, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return "", &WriteError{Op: "append", Err: err}
	}

	key := uuid.NewString()
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO orders (remote_key, id, table_number, items, total_price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, key, order.ID, order.TableNumber, items, order.TotalPrice, order.Status, order.CreatedAt)
	if err != nil {
		return "", &WriteError{Op: "append", Err: err}
	}
	return key, nil
}

func (p *Postgres) PatchStatus(ctx context.Context, remoteKey string, status models.Status) error {
	result, err := p.db.ExecContext(ctx, `
		UPDATE orders SET status = $2 WHERE remote_key = $1
	`, remoteKey, status)
	if err != nil {
		return &WriteError{Op: "patch_status", Key: remoteKey, Err: err}
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return &WriteError{Op: "patch_status", Key: remoteKey, Err: err}
	}
	if affected == 0 {
		return &WriteError{Op: "patch_status", Key: remoteKey, Err: ErrUnknownKey}
	}
	return nil
}

func (p *Postgres) Subscribe(onSnapshot func([]models.Order), onError func(error)) (func(), error) {
	refresh := func() {
		snapshot, err := p.queryAll()
		if err != nil {
			onError(&SubscriptionError{Err: err})
			return
		}
		onSnapshot(snapshot)
	}

	listener := pq.NewListener(p.dsn, 2*time.Second, time.Minute, listenerEvents(refresh, onError))
	if err := listener.Listen(ordersChannel); err != nil {
		listener.Close()
		return nil, &SubscriptionError{Err: err}
	}

	snapshot, err := p.queryAll()
	if err != nil {
		listener.Close()
		return nil, &SubscriptionError{Err: err}
	}
	onSnapshot(snapshot)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case _, ok := <-listener.Notify:
				if !ok {
					return
				}
				refresh()
			case <-time.After(90 * time.Second):
				// keeps the listener connection honest during quiet hours
				if err := listener.Ping(); err != nil {
					onError(&SubscriptionError{Err: err})
				}
			}
		}
	}()

	unsubscribe := func() {
		close(done)
		if err := listener.Close(); err != nil {
			p.log.WithError(err).Warn("failed to close orders listener")
		}
	}
	return unsubscribe, nil
}

// listenerEvents builds the pq listener event callback. A reconnected
// listener may have missed notifications while the connection was down, so
// reconnection triggers a full refresh rather than waiting for the next
// notify.
func listenerEvents(refresh func(), onError func(error)) func(pq.ListenerEventType, error) {
	return func(ev pq.ListenerEventType, err error) {
		if err != nil {
			onError(&SubscriptionError{Err: err})
		}
		if ev == pq.ListenerEventReconnected {
			refresh()
		}
	}
}

func (p *Postgres) queryAll() ([]models.Order, error) {
	rows, err := p.db.Query(`
		SELECT remote_key, id, table_number, items, total_price, status, created_at
		FROM orders
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var items []byte
		if err := rows.Scan(&o.RemoteKey, &o.ID, &o.TableNumber, &items, &o.TotalPrice, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
