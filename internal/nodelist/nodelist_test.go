package nodelist

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/protocol"
	"github.com/vistaverse/vista/internal/socket"
)

// Compile-time interface check.
var _ Transport = (*mockTransport)(nil)

// mockTransport implements Transport for in-process testing. Tests
// script the remote side: ConnectToHost flips the slot to Connecting and
// then Connected after a short delay, and every framed write is recorded
// and offered to an optional responder that can inject replies.
type mockTransport struct {
	mu         sync.Mutex
	states     map[protocol.NodeType]socket.State
	onDatagram func(socket.Datagram)
	sent       []*protocol.Packet
	sentTo     []protocol.NodeType
	closed     []protocol.NodeType
	cleared    int
	respond    func(to protocol.NodeType, pkt *protocol.Packet)
}

func newMockTransport() *mockTransport {
	return &mockTransport{states: make(map[protocol.NodeType]socket.State)}
}

func (m *mockTransport) ConnectToHost(_ context.Context, _ string, t protocol.NodeType, onChannelID func(int)) {
	m.mu.Lock()
	if m.states[t] == socket.Unconnected {
		m.states[t] = socket.Connecting
	}
	m.mu.Unlock()
	if onChannelID != nil {
		onChannelID(0)
	}
	// Negotiation completes asynchronously, as with a real data channel.
	go func() {
		time.Sleep(5 * time.Millisecond)
		m.setState(t, socket.Connected)
	}()
}

func (m *mockTransport) setState(t protocol.NodeType, s socket.State) {
	m.mu.Lock()
	m.states[t] = s
	m.mu.Unlock()
}

func (m *mockTransport) StateOf(t protocol.NodeType) socket.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[t]
}

func (m *mockTransport) OnDatagram(fn func(socket.Datagram)) {
	m.mu.Lock()
	m.onDatagram = fn
	m.mu.Unlock()
}

func (m *mockTransport) WriteDatagram(t protocol.NodeType, data []byte) bool {
	pkt, err := protocol.Decode(data)
	if err != nil {
		return false
	}

	m.mu.Lock()
	if m.states[t] != socket.Connected {
		m.mu.Unlock()
		return false
	}
	m.sent = append(m.sent, pkt)
	m.sentTo = append(m.sentTo, t)
	respond := m.respond
	m.mu.Unlock()

	if respond != nil {
		go respond(t, pkt)
	}
	return true
}

func (m *mockTransport) CloseNode(t protocol.NodeType) {
	m.mu.Lock()
	m.closed = append(m.closed, t)
	m.states[t] = socket.Unconnected
	m.mu.Unlock()
}

func (m *mockTransport) ClearConnections() {
	m.mu.Lock()
	m.cleared++
	m.states = make(map[protocol.NodeType]socket.State)
	m.mu.Unlock()
}

// deliver injects an inbound packet as if it arrived on a data channel.
func (m *mockTransport) deliver(from protocol.NodeType, t protocol.PacketType, payload []byte) {
	m.mu.Lock()
	fn := m.onDatagram
	m.mu.Unlock()
	if fn == nil {
		return
	}
	fn(socket.Datagram{From: from, Data: protocol.Encode(&protocol.Packet{
		Type:    t,
		Version: protocol.VersionForPacketType(t),
		Payload: payload,
	})})
}

// sentOfType counts recorded writes of one packet type.
func (m *mockTransport) sentOfType(t protocol.PacketType) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, pkt := range m.sent {
		if pkt.Type == t {
			count++
		}
	}
	return count
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func testConfig() Config {
	return Config{
		CheckInPeriod:     20 * time.Millisecond,
		SilentNodeTimeout: 150 * time.Millisecond,
		ReconnectMinDelay: time.Millisecond,
	}
}

// waitFor polls cond until it holds or the timeout elapses.
func waitFor(t *testing.T, timeout time.Duration, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

var (
	avatarMixerUUID = uuid.MustParse("b71d5380-2fcc-4833-93a7-9a4967017587")
	sessionUUID     = uuid.MustParse("a82f40b6-ee89-46cc-b504-02b88d72a546")
)

func domainListPayload(nodes ...ListedNode) []byte {
	return (&DomainList{LocalID: 3, SessionUUID: sessionUUID, Nodes: nodes}).Encode()
}

func avatarMixerNode() ListedNode {
	return ListedNode{
		Type:          protocol.NodeTypeAvatarMixer,
		UUID:          avatarMixerUUID,
		PublicAddress: "203.0.113.7:40102",
		LocalAddress:  "10.0.0.7:40102",
		LocalID:       7,
	}
}

// stateRecorder collects domain state transitions.
type stateRecorder struct {
	mu     sync.Mutex
	states []DomainState
}

func (r *stateRecorder) record(s DomainState, _ string) {
	r.mu.Lock()
	r.states = append(r.states, s)
	r.mu.Unlock()
}

func (r *stateRecorder) has(s DomainState) bool {
	return r.count(s) > 0
}

func (r *stateRecorder) count(s DomainState) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.states {
		if got == s {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

// TestConnectSequence drives a full join: DISCONNECTED → CONNECTING →
// CONNECTED, roster populated from the DomainList, node activated via
// ping/pong.
func TestConnectSequence(t *testing.T) {
	tr := newMockTransport()
	n := New(testConfig(), tr)

	rec := &stateRecorder{}
	n.OnDomainStateChanged(rec.record)

	var added, activated []Node
	var mu sync.Mutex
	n.OnNodeAdded(func(node Node) { mu.Lock(); added = append(added, node); mu.Unlock() })
	n.OnNodeActivated(func(node Node) { mu.Lock(); activated = append(activated, node); mu.Unlock() })

	// Script the domain server: answer check-ins with a one-node roster
	// and answer probes with replies.
	tr.respond = func(to protocol.NodeType, pkt *protocol.Packet) {
		switch pkt.Type {
		case protocol.PacketTypeDomainConnectRequest, protocol.PacketTypeDomainListRequest:
			tr.deliver(protocol.NodeTypeDomainServer, protocol.PacketTypeDomainList,
				domainListPayload(avatarMixerNode()))
		case protocol.PacketTypePing:
			ping, err := DecodePing(pkt.Payload)
			if err == nil {
				tr.deliver(to, protocol.PacketTypePingReply, ping.Encode())
			}
		}
	}

	if s, _ := n.DomainState(); s != DomainDisconnected {
		t.Fatalf("initial state = %s", s)
	}

	n.Connect(context.Background(), "ws://127.0.0.1:40102")

	waitFor(t, time.Second, "domain CONNECTED", func() bool {
		s, _ := n.DomainState()
		return s == DomainConnected
	})
	if !rec.has(DomainConnecting) {
		t.Errorf("CONNECTING state never observed")
	}

	waitFor(t, time.Second, "avatar mixer added", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(added) == 1
	})
	mu.Lock()
	if added[0].UUID != avatarMixerUUID || added[0].Type != protocol.NodeTypeAvatarMixer {
		t.Errorf("added node = %+v", added[0])
	}
	mu.Unlock()

	waitFor(t, time.Second, "avatar mixer activated", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(activated) == 1
	})
	mu.Lock()
	if activated[0].Active == NoSocket {
		t.Errorf("activated node has no active socket")
	}
	mu.Unlock()

	waitFor(t, time.Second, "avatar mixer CONNECTED", func() bool {
		return n.ClientStateOf(protocol.NodeTypeAvatarMixer) == ClientConnected
	})

	if n.SessionUUID() != sessionUUID {
		t.Errorf("session UUID = %s, want %s", n.SessionUUID(), sessionUUID)
	}

	n.Disconnect()
}

// TestDomainListRequestAfterJoin verifies the check-in switches from
// connect requests to list requests once joined.
func TestDomainListRequestAfterJoin(t *testing.T) {
	tr := newMockTransport()
	n := New(testConfig(), tr)

	tr.respond = func(_ protocol.NodeType, pkt *protocol.Packet) {
		if pkt.Type == protocol.PacketTypeDomainConnectRequest {
			tr.deliver(protocol.NodeTypeDomainServer, protocol.PacketTypeDomainList, domainListPayload())
		}
	}

	n.Connect(context.Background(), "ws://127.0.0.1:40102")
	defer n.Disconnect()

	waitFor(t, time.Second, "a DomainListRequest", func() bool {
		return tr.sentOfType(protocol.PacketTypeDomainListRequest) > 0
	})
}

// TestRefusalStopsConnectRequests verifies REFUSED latches, check-ins go
// quiet, and a spontaneous DomainList restores CONNECTED.
func TestRefusalStopsConnectRequests(t *testing.T) {
	tr := newMockTransport()
	n := New(testConfig(), tr)

	rec := &stateRecorder{}
	n.OnDomainStateChanged(rec.record)

	tr.respond = func(_ protocol.NodeType, pkt *protocol.Packet) {
		if pkt.Type == protocol.PacketTypeDomainConnectRequest {
			tr.deliver(protocol.NodeTypeDomainServer, protocol.PacketTypeDomainConnectionDenied,
				(&ConnectionDenied{ReasonCode: 1, Reason: "not on the allowlist"}).Encode())
		}
	}

	n.Connect(context.Background(), "ws://127.0.0.1:40102")
	defer n.Disconnect()

	waitFor(t, time.Second, "domain REFUSED", func() bool {
		s, _ := n.DomainState()
		return s == DomainRefused
	})
	if _, reason := n.DomainState(); reason != "not on the allowlist" {
		t.Errorf("refusal reason = %q", reason)
	}

	// Once refused, check-ins stop sending connect requests.
	quiesced := tr.sentOfType(protocol.PacketTypeDomainConnectRequest)
	time.Sleep(100 * time.Millisecond)
	if got := tr.sentOfType(protocol.PacketTypeDomainConnectRequest); got > quiesced+1 {
		t.Errorf("connect requests kept flowing while refused: %d → %d", quiesced, got)
	}

	// The server changes policy: a spontaneous DomainList reinstates us.
	tr.deliver(protocol.NodeTypeDomainServer, protocol.PacketTypeDomainList, domainListPayload())
	waitFor(t, time.Second, "domain CONNECTED after policy change", func() bool {
		s, _ := n.DomainState()
		return s == DomainConnected
	})
}

// TestSilentNodePruning verifies a node the mixer stops talking through
// is killed after the silent timeout.
func TestSilentNodePruning(t *testing.T) {
	tr := newMockTransport()
	n := New(testConfig(), tr)

	var killed []Node
	var mu sync.Mutex
	n.OnNodeKilled(func(node Node) { mu.Lock(); killed = append(killed, node); mu.Unlock() })

	var sentList sync.Once
	listed := make(chan struct{})
	tr.respond = func(_ protocol.NodeType, pkt *protocol.Packet) {
		// Advertise the node exactly once, then go quiet: with no list
		// refreshes and no traffic from the node, last-heard ages out.
		if pkt.Type == protocol.PacketTypeDomainConnectRequest {
			sentList.Do(func() {
				tr.deliver(protocol.NodeTypeDomainServer, protocol.PacketTypeDomainList,
					domainListPayload(avatarMixerNode()))
				close(listed)
			})
		}
	}

	n.Connect(context.Background(), "ws://127.0.0.1:40102")
	defer n.Disconnect()

	<-listed
	waitFor(t, time.Second, "node killed", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(killed) > 0
	})
	mu.Lock()
	if killed[0].UUID != avatarMixerUUID {
		t.Errorf("killed node = %+v", killed[0])
	}
	mu.Unlock()
}

// TestRemovedNodePacketKills verifies DomainServerRemovedNode kills the
// named node immediately.
func TestRemovedNodePacketKills(t *testing.T) {
	tr := newMockTransport()
	n := New(testConfig(), tr)

	var killed []Node
	var mu sync.Mutex
	n.OnNodeKilled(func(node Node) { mu.Lock(); killed = append(killed, node); mu.Unlock() })

	tr.respond = func(to protocol.NodeType, pkt *protocol.Packet) {
		switch pkt.Type {
		case protocol.PacketTypeDomainConnectRequest, protocol.PacketTypeDomainListRequest:
			tr.deliver(protocol.NodeTypeDomainServer, protocol.PacketTypeDomainList,
				domainListPayload(avatarMixerNode()))
		case protocol.PacketTypePing:
			ping, _ := DecodePing(pkt.Payload)
			tr.deliver(to, protocol.PacketTypePingReply, ping.Encode())
		}
	}

	n.Connect(context.Background(), "ws://127.0.0.1:40102")
	defer n.Disconnect()

	waitFor(t, time.Second, "node present", func() bool {
		return n.ClientStateOf(protocol.NodeTypeAvatarMixer) != ClientUnavailable
	})

	// An unknown UUID is ignored.
	tr.deliver(protocol.NodeTypeDomainServer, protocol.PacketTypeDomainServerRemovedNode,
		(&RemovedNode{UUID: uuid.New()}).Encode())

	tr.deliver(protocol.NodeTypeDomainServer, protocol.PacketTypeDomainServerRemovedNode,
		(&RemovedNode{UUID: avatarMixerUUID}).Encode())

	waitFor(t, time.Second, "node killed", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(killed) == 1 && killed[0].UUID == avatarMixerUUID
	})
}

// TestDisconnectClearsEverything verifies the full teardown contract:
// roster empty, transport cleared, state DISCONNECTED.
func TestDisconnectClearsEverything(t *testing.T) {
	tr := newMockTransport()
	n := New(testConfig(), tr)

	tr.respond = func(_ protocol.NodeType, pkt *protocol.Packet) {
		if pkt.Type == protocol.PacketTypeDomainConnectRequest {
			tr.deliver(protocol.NodeTypeDomainServer, protocol.PacketTypeDomainList,
				domainListPayload(avatarMixerNode()))
		}
	}

	n.Connect(context.Background(), "ws://127.0.0.1:40102")
	waitFor(t, time.Second, "domain CONNECTED", func() bool {
		s, _ := n.DomainState()
		return s == DomainConnected
	})

	n.Disconnect()

	if s, _ := n.DomainState(); s != DomainDisconnected {
		t.Errorf("state after disconnect = %s", s)
	}
	if n.ClientStateOf(protocol.NodeTypeAvatarMixer) != ClientUnavailable {
		t.Errorf("roster not cleared")
	}
	if n.SessionUUID() != uuid.Nil {
		t.Errorf("session UUID survived disconnect")
	}

	tr.mu.Lock()
	cleared := tr.cleared
	tr.mu.Unlock()
	if cleared == 0 {
		t.Errorf("transport never cleared")
	}

	// Idempotent.
	n.Disconnect()
}

// TestReconnectAfterInterruption verifies the check-in loop recovers a
// dropped transport without caller involvement: CONNECTED → CONNECTING →
// CONNECTED.
func TestReconnectAfterInterruption(t *testing.T) {
	tr := newMockTransport()
	n := New(testConfig(), tr)

	rec := &stateRecorder{}
	n.OnDomainStateChanged(rec.record)

	tr.respond = func(_ protocol.NodeType, pkt *protocol.Packet) {
		switch pkt.Type {
		case protocol.PacketTypeDomainConnectRequest, protocol.PacketTypeDomainListRequest:
			tr.deliver(protocol.NodeTypeDomainServer, protocol.PacketTypeDomainList, domainListPayload())
		}
	}

	n.Connect(context.Background(), "ws://127.0.0.1:40102")
	defer n.Disconnect()

	waitFor(t, time.Second, "initial CONNECTED", func() bool {
		s, _ := n.DomainState()
		return s == DomainConnected
	})

	// Simulate the WebSocket dropping: the domain-server slot reads Unconnected.
	tr.setState(protocol.NodeTypeDomainServer, socket.Unconnected)

	waitFor(t, time.Second, "CONNECTING after interruption", func() bool {
		return rec.count(DomainConnecting) >= 2
	})
	waitFor(t, time.Second, "CONNECTED after recovery", func() bool {
		return rec.count(DomainConnected) >= 2
	})
}

// TestUnknownPacketTypeDropped verifies that repeated packets of an
// unhandled type are dropped without changing the domain state.
func TestUnknownPacketTypeDropped(t *testing.T) {
	tr := newMockTransport()
	n := New(testConfig(), tr)

	tr.mu.Lock()
	fn := tr.onDatagram
	tr.mu.Unlock()
	if fn == nil {
		t.Fatal("node list never registered a datagram handler")
	}

	for i := 0; i < 3; i++ {
		tr.deliver(protocol.NodeTypeDomainServer, protocol.PacketType(0x7F), nil)
	}

	if s, _ := n.DomainState(); s != DomainDisconnected {
		t.Errorf("unknown packet changed domain state to %s", s)
	}
}
