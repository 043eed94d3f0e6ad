package store

import (
	"context"
	"fmt"

	"github.com/yichun-tseng/snackshop/models"
)

// RemoteOrderStore is the boundary to the shared remote collection. It is a
// full-snapshot replication model: every mutation, by any client, causes the
// entire collection to be delivered to every subscriber. The concrete
// backing store is swappable behind this interface.
type RemoteOrderStore interface {
	// Append durably stores a new order and returns its store-assigned
	// remote key. It does not retry internally.
	Append(ctx context.Context, order models.Order) (string, error)

	// PatchStatus updates exactly the status field of one record. Other
	// fields are never touched.
	PatchStatus(ctx context.Context, remoteKey string, status models.Status) error

	// Subscribe registers a snapshot callback. onSnapshot is invoked once
	// immediately with the current collection and then again whenever any
	// record changes anywhere. onError is invoked on transport-level
	// disconnect; the store does not promise silent recovery. The returned
	// function cancels the subscription and must be called on teardown.
	Subscribe(onSnapshot func([]models.Order), onError func(error)) (func(), error)
}

// WriteError reports that a store write did not durably apply.
type WriteError struct {
	Op  string // "append" or "patch_status"
	Key string // remote key, empty for appends
	Err error
}

func (e *WriteError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s failed for %s: %v", e.Op, e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// SubscriptionError reports that the snapshot stream disconnected.
type SubscriptionError struct {
	Err error
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("snapshot subscription lost: %v", e.Err)
}

func (e *SubscriptionError) Unwrap() error { return e.Err }
