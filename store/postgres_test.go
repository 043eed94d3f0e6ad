package store

import (
	"errors"
	"testing"

	"github.com/lib/pq"
)

func TestListenerEvents(t *testing.T) {
	t.Run("reconnection triggers a full refresh", func(t *testing.T) {
		refreshes := 0
		handler := listenerEvents(func() { refreshes++ }, func(error) {
			t.Fatal("no error expected on clean reconnect")
		})

		handler(pq.ListenerEventReconnected, nil)

		if refreshes != 1 {
			t.Fatalf("expected one refresh, got %d", refreshes)
		}
	})

	t.Run("connection loss is reported without refreshing", func(t *testing.T) {
		cause := errors.New("connection reset")
		refreshes := 0
		var got error
		handler := listenerEvents(func() { refreshes++ }, func(err error) { got = err })

		handler(pq.ListenerEventDisconnected, cause)

		if refreshes != 0 {
			t.Fatalf("expected no refresh on disconnect, got %d", refreshes)
		}
		var subErr *SubscriptionError
		if !errors.As(got, &subErr) || !errors.Is(got, cause) {
			t.Fatalf("expected wrapped subscription error, got %v", got)
		}
	})

	t.Run("ordinary connect stays quiet", func(t *testing.T) {
		handler := listenerEvents(func() {
			t.Fatal("no refresh expected on first connect")
		}, func(error) {
			t.Fatal("no error expected on first connect")
		})

		handler(pq.ListenerEventConnected, nil)
	})
}
