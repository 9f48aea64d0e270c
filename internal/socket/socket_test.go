package socket

import (
	"context"
	"testing"
	"time"

	"github.com/vistaverse/vista/internal/protocol"
)

// waitFor polls cond until it holds or the timeout elapses.
func waitFor(t *testing.T, timeout time.Duration, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

// TestUnreachableSignalingLeavesSlotUnconnected verifies a failed
// signaling dial drops the pending peer slot back to Unconnected with no
// packets sent and no panic.
func TestUnreachableSignalingLeavesSlotUnconnected(t *testing.T) {
	s := New()
	defer s.ClearConnections()

	s.ConnectToHost(context.Background(), "ws://0.0.0.0:0", protocol.NodeTypeDomainServer, nil)

	// The slot is Connecting while the dial is pending...
	if st := s.StateOf(protocol.NodeTypeDomainServer); st == Connected {
		t.Fatalf("state = %s before any negotiation", st)
	}

	// ...and Unconnected once the dial fails.
	waitFor(t, 2*time.Second, "Unconnected after failed dial", func() bool {
		return s.StateOf(protocol.NodeTypeDomainServer) == Unconnected
	})

	if s.WriteDatagram(protocol.NodeTypeDomainServer, []byte("never")) {
		t.Errorf("write succeeded with no channel")
	}
}

// TestClearConnectionsIsReentrant verifies the socket is immediately
// reusable after a teardown.
func TestClearConnectionsIsReentrant(t *testing.T) {
	s := New()

	s.ConnectToHost(context.Background(), "ws://0.0.0.0:0", protocol.NodeTypeDomainServer, nil)
	s.ClearConnections()

	if st := s.StateOf(protocol.NodeTypeDomainServer); st != Unconnected {
		t.Fatalf("state after clear = %s", st)
	}

	// A fresh connect round may start right away.
	s.ConnectToHost(context.Background(), "ws://0.0.0.0:0", protocol.NodeTypeAudioMixer, nil)
	s.ClearConnections()

	// Abort is an alias for the same teardown and must be idempotent.
	s.Abort()
}

// TestStateOfUnknownPeer verifies an unasked-for slot reads Unconnected.
func TestStateOfUnknownPeer(t *testing.T) {
	s := New()
	if st := s.StateOf(protocol.NodeTypeMessagesMixer); st != Unconnected {
		t.Errorf("state = %s, want Unconnected", st)
	}
}
