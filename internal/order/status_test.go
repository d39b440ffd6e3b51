package order

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCompleted, StatusCancelled} {
		if !ValidStatus(s) {
			t.Fatalf("%s rejected", s)
		}
	}
	if ValidStatus("shipped") || ValidStatus("") {
		t.Fatalf("unknown status accepted")
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusPending, StatusPreparing},
		{StatusPreparing, StatusReady},
		{StatusReady, StatusDelivered},
		{StatusDelivered, StatusCompleted},
		{StatusPending, StatusCancelled},
		{StatusPreparing, StatusCompleted},
		{StatusReady, StatusCancelled},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Fatalf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{StatusPending, StatusDelivered}, // no skipping ahead
		{StatusReady, StatusPreparing},   // no going back
		{StatusCompleted, StatusPending}, // terminal
		{StatusCancelled, StatusPreparing},
		{StatusPending, StatusPending}, // no self-loop
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Fatalf("%s -> %s should be denied", tc.from, tc.to)
		}
	}
}
