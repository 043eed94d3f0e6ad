package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/yichun-tseng/snackshop/models"
)

// ErrUnknownKey is wrapped in a WriteError when a patch targets a remote key
// the store has never issued.
var ErrUnknownKey = errors.New("unknown remote key")

// Memory is an in-process RemoteOrderStore. Every write fans the full
// collection out to every subscriber, including the writer, synchronously.
// It backs tests and single-machine demo deployments.
type Memory struct {
	// deliverMu is held from mutation through fan-out so concurrent writers
	// cannot deliver snapshots out of order. It is separate from mu so
	// subscriber callbacks may call back into the store without deadlocking
	// on the records lock.
	deliverMu sync.Mutex

	mu      sync.Mutex
	records map[string]models.Order // by remote key
	subs    map[int]func([]models.Order)
	nextSub int
}

func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]models.Order),
		subs:    make(map[int]func([]models.Order)),
	}
}

func (m *Memory) Append(ctx context.Context, order models.Order) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &WriteError{Op: "append", Err: err}
	}

	m.deliverMu.Lock()
	defer m.deliverMu.Unlock()

	m.mu.Lock()
	key := uuid.NewString()
	order.RemoteKey = key
	m.records[key] = order
	snapshot := m.snapshotLocked()
	subs := m.subscribersLocked()
	m.mu.Unlock()

	broadcast(subs, snapshot)
	return key, nil
}

func (m *Memory) PatchStatus(ctx context.Context, remoteKey string, status models.Status) error {
	if err := ctx.Err(); err != nil {
		return &WriteError{Op: "patch_status", Key: remoteKey, Err: err}
	}

	m.deliverMu.Lock()
	defer m.deliverMu.Unlock()

	m.mu.Lock()
	record, ok := m.records[remoteKey]
	if !ok {
		m.mu.Unlock()
		return &WriteError{Op: "patch_status", Key: remoteKey, Err: ErrUnknownKey}
	}
	record.Status = status
	m.records[remoteKey] = record
	snapshot := m.snapshotLocked()
	subs := m.subscribersLocked()
	m.mu.Unlock()

	broadcast(subs, snapshot)
	return nil
}

func (m *Memory) Subscribe(onSnapshot func([]models.Order), onError func(error)) (func(), error) {
	m.deliverMu.Lock()
	defer m.deliverMu.Unlock()

	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = onSnapshot
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	onSnapshot(snapshot)

	unsubscribe := func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
	return unsubscribe, nil
}

// snapshotLocked copies the collection ordered by creation time so every
// subscriber sees the same deterministic sequence.
func (m *Memory) snapshotLocked() []models.Order {
	snapshot := make([]models.Order, 0, len(m.records))
	for _, record := range m.records {
		snapshot = append(snapshot, record)
	}
	sort.Slice(snapshot, func(i, j int) bool {
		if snapshot[i].CreatedAt.Equal(snapshot[j].CreatedAt) {
			return snapshot[i].ID < snapshot[j].ID
		}
		return snapshot[i].CreatedAt.Before(snapshot[j].CreatedAt)
	})
	return snapshot
}

func (m *Memory) subscribersLocked() []func([]models.Order) {
	subs := make([]func([]models.Order), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	return subs
}

func broadcast(subs []func([]models.Order), snapshot []models.Order) {
	for _, fn := range subs {
		fn(snapshot)
	}
}
