package models

import "testing"

func TestStatusCanTransitionTo(t *testing.T) {
	all := []Status{StatusPending, StatusPreparing, StatusCompleted, StatusPaid, StatusCancelled}

	allowed := map[Status]map[Status]bool{
		StatusPending:   {StatusPreparing: true, StatusCancelled: true},
		StatusPreparing: {StatusCompleted: true, StatusCancelled: true},
		StatusCompleted: {StatusPaid: true},
		StatusPaid:      {},
		StatusCancelled: {},
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("%s -> %s: expected %v, got %v", from, to, want, got)
			}
		}
	}
}

func TestStatusSettleable(t *testing.T) {
	cases := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusPreparing, true},
		{StatusCompleted, true},
		{StatusPaid, false},
		{StatusCancelled, false},
	}
	for _, tc := range cases {
		if got := tc.status.Settleable(); got != tc.want {
			t.Errorf("Settleable() for %s: expected %v, got %v", tc.status, tc.want, got)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusPaid, StatusCancelled} {
		if !s.Terminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}
	for _, s := range []Status{StatusPending, StatusPreparing, StatusCompleted} {
		if s.Terminal() {
			t.Errorf("expected %s not to be terminal", s)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	if Status("unknown").IsValid() {
		t.Fatalf("expected unknown status to be invalid")
	}
	if !StatusPending.IsValid() {
		t.Fatalf("expected pending to be valid")
	}
}
