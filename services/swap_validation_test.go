package services_test

import (
	"errors"
	"testing"

	"skillswap-api/models"
	"skillswap-api/services"
)

func pendingSwap() *models.SwapRequest {
	return &models.SwapRequest{
		ID:         1,
		SenderID:   "alice",
		ReceiverID: "bob",
		Status:     models.SwapStatusPending,
	}
}

func TestValidateSwapResponse_ReceiverControlsAcceptReject(t *testing.T) {
	for _, target := range []models.SwapStatus{models.SwapStatusAccepted, models.SwapStatusRejected} {
		if err := services.ValidateSwapResponse(pendingSwap(), "bob", target); err != nil {
			t.Fatalf("receiver %s should be allowed, got: %v", target, err)
		}
		if err := services.ValidateSwapResponse(pendingSwap(), "alice", target); !errors.Is(err, services.ErrUnauthorizedAction) {
			t.Fatalf("sender %s should be unauthorized, got: %v", target, err)
		}
		if err := services.ValidateSwapResponse(pendingSwap(), "mallory", target); !errors.Is(err, services.ErrUnauthorizedAction) {
			t.Fatalf("outsider %s should be unauthorized, got: %v", target, err)
		}
	}
}

func TestValidateSwapResponse_SenderControlsDelete(t *testing.T) {
	if err := services.ValidateSwapResponse(pendingSwap(), "alice", models.SwapStatusDeleted); err != nil {
		t.Fatalf("sender delete should be allowed, got: %v", err)
	}
	if err := services.ValidateSwapResponse(pendingSwap(), "bob", models.SwapStatusDeleted); !errors.Is(err, services.ErrUnauthorizedAction) {
		t.Fatalf("receiver delete should be unauthorized, got: %v", err)
	}
}

func TestValidateSwapResponse_SenderControlsComplete(t *testing.T) {
	swap := pendingSwap()
	swap.Status = models.SwapStatusAccepted

	if err := services.ValidateSwapResponse(swap, "alice", models.SwapStatusCompleted); err != nil {
		t.Fatalf("sender complete should be allowed, got: %v", err)
	}
	if err := services.ValidateSwapResponse(swap, "bob", models.SwapStatusCompleted); !errors.Is(err, services.ErrUnauthorizedAction) {
		t.Fatalf("receiver complete should be unauthorized, got: %v", err)
	}
}

func TestValidateSwapResponse_TransitionCheckedBeforeAuthorization(t *testing.T) {
	swap := pendingSwap()
	swap.Status = models.SwapStatusCompleted

	// Even the right actor gets a transition error out of a terminal state
	if err := services.ValidateSwapResponse(swap, "bob", models.SwapStatusAccepted); !errors.Is(err, services.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}
	// And so does an outsider
	if err := services.ValidateSwapResponse(swap, "mallory", models.SwapStatusAccepted); !errors.Is(err, services.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for outsider, got: %v", err)
	}
}

func TestValidateSwapResponse_PendingIsNeverATarget(t *testing.T) {
	for _, from := range models.ValidSwapStatuses {
		swap := pendingSwap()
		swap.Status = from
		if err := services.ValidateSwapResponse(swap, "alice", models.SwapStatusPending); !errors.Is(err, services.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition for %s -> pending, got: %v", from, err)
		}
	}
}

func TestCanTransitionTo_MatchesTable(t *testing.T) {
	cases := []struct {
		from, to models.SwapStatus
		want     bool
	}{
		{models.SwapStatusPending, models.SwapStatusAccepted, true},
		{models.SwapStatusPending, models.SwapStatusRejected, true},
		{models.SwapStatusPending, models.SwapStatusDeleted, true},
		{models.SwapStatusPending, models.SwapStatusCompleted, false},
		{models.SwapStatusAccepted, models.SwapStatusCompleted, true},
		{models.SwapStatusAccepted, models.SwapStatusRejected, false},
		{models.SwapStatusCompleted, models.SwapStatusAccepted, false},
		{models.SwapStatusRejected, models.SwapStatusAccepted, false},
		{models.SwapStatusDeleted, models.SwapStatusAccepted, false},
	}

	for _, tc := range cases {
		swap := &models.SwapRequest{Status: tc.from}
		if got := swap.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := map[models.SwapStatus]bool{
		models.SwapStatusPending:   false,
		models.SwapStatusAccepted:  false,
		models.SwapStatusCompleted: true,
		models.SwapStatusRejected:  true,
		models.SwapStatusDeleted:   true,
	}

	for status, want := range terminal {
		swap := &models.SwapRequest{Status: status}
		if got := swap.IsTerminal(); got != want {
			t.Errorf("IsTerminal(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestSwapPartner(t *testing.T) {
	swap := pendingSwap()

	if got := swap.SwapPartner("alice"); got != "bob" {
		t.Fatalf("expected sender's partner to be bob, got %q", got)
	}
	if got := swap.SwapPartner("bob"); got != "alice" {
		t.Fatalf("expected receiver's partner to be alice, got %q", got)
	}
	if got := swap.SwapPartner("mallory"); got != "" {
		t.Fatalf("expected empty partner for a non-participant, got %q", got)
	}
}

func TestPairKey_OrderIndependent(t *testing.T) {
	if models.PairKey("alice", "bob") != models.PairKey("bob", "alice") {
		t.Fatal("expected pair key to ignore argument order")
	}
	if models.PairKey("alice", "bob") == models.PairKey("alice", "carol") {
		t.Fatal("expected different pairs to produce different keys")
	}
}
