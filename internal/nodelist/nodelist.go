package nodelist

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/protocol"
	"github.com/vistaverse/vista/internal/socket"
	"github.com/vistaverse/vista/internal/util"
)

// Transport is the subset of the Socket the node list drives. Tests
// substitute an in-process mock.
type Transport interface {
	ConnectToHost(ctx context.Context, url string, nodeType protocol.NodeType, onChannelID func(int))
	WriteDatagram(nodeType protocol.NodeType, data []byte) bool
	StateOf(nodeType protocol.NodeType) socket.State
	OnDatagram(fn func(socket.Datagram))
	CloseNode(nodeType protocol.NodeType)
	ClearConnections()
}

// Config carries the tunables of one node list.
type Config struct {
	CheckInPeriod     time.Duration
	SilentNodeTimeout time.Duration
	ReconnectMinDelay time.Duration
	MaxPacketSize     int
}

// Defaults fills zero fields with the standard values.
func (c Config) Defaults() Config {
	if c.CheckInPeriod == 0 {
		c.CheckInPeriod = time.Second
	}
	if c.SilentNodeTimeout == 0 {
		c.SilentNodeTimeout = 2 * time.Second
	}
	if c.ReconnectMinDelay == 0 {
		c.ReconnectMinDelay = 500 * time.Millisecond
	}
	if c.MaxPacketSize == 0 {
		c.MaxPacketSize = 1492
	}
	return c
}

// ClientState is the observable state of one assignment-client slot.
type ClientState int

const (
	ClientUnavailable ClientState = iota
	ClientDisconnected
	ClientConnected
)

// String returns the client state name for logs.
func (s ClientState) String() string {
	switch s {
	case ClientUnavailable:
		return "UNAVAILABLE"
	case ClientDisconnected:
		return "DISCONNECTED"
	case ClientConnected:
		return "CONNECTED"
	default:
		return "Unknown"
	}
}

// assignmentTypes are the client slots whose state transitions are
// reported to the SDK surface.
var assignmentTypes = []protocol.NodeType{
	protocol.NodeTypeAvatarMixer,
	protocol.NodeTypeAudioMixer,
	protocol.NodeTypeEntityServer,
	protocol.NodeTypeMessagesMixer,
	protocol.NodeTypeAssetServer,
}

// NodeList owns the roster, the domain handler and the check-in loop.
// One NodeList (with its Transport) forms one independent SDK context.
type NodeList struct {
	cfg       Config
	transport Transport
	receiver  *PacketReceiver
	seq       protocol.SequenceNumber

	mu             sync.Mutex
	domain         DomainHandler
	nodes          map[uuid.UUID]*Node
	joined         bool
	connectCtx     context.Context
	cancelCheckIn  context.CancelFunc
	lastDisconnect time.Time
	clientStates   map[protocol.NodeType]ClientState

	onDomainStateChanged func(DomainState, string)
	onConnectedToDomain  func()
	onNodeAdded          func(Node)
	onNodeActivated      func(Node)
	onNodeKilled         func(Node)
	onClientStateChanged func(protocol.NodeType, ClientState)
}

// New creates a node list over the given transport and registers the
// domain protocol listeners.
func New(cfg Config, tr Transport) *NodeList {
	n := &NodeList{
		cfg:          cfg.Defaults(),
		transport:    tr,
		receiver:     NewPacketReceiver(),
		nodes:        make(map[uuid.UUID]*Node),
		clientStates: make(map[protocol.NodeType]ClientState),
	}

	tr.OnDatagram(func(d socket.Datagram) {
		n.touchNode(d.From)
		n.receiver.Handle(d.From, d.Data)
	})

	n.receiver.RegisterListener(protocol.PacketTypeDomainList, n.processDomainList)
	n.receiver.RegisterListener(protocol.PacketTypeDomainConnectionDenied, n.processConnectionDenied)
	n.receiver.RegisterListener(protocol.PacketTypeDomainServerRemovedNode, n.processRemovedNode)
	n.receiver.RegisterListener(protocol.PacketTypePing, n.processPing)
	n.receiver.RegisterListener(protocol.PacketTypePingReply, n.processPingReply)

	return n
}

// Receiver exposes the packet receiver so upper layers can register
// listeners for their own packet types (entity data, messages).
func (n *NodeList) Receiver() *PacketReceiver { return n.receiver }

// Callback registration. Callbacks fire off the node list's internal
// goroutines and must not block.

func (n *NodeList) OnDomainStateChanged(fn func(DomainState, string)) {
	n.mu.Lock()
	n.onDomainStateChanged = fn
	n.mu.Unlock()
}

func (n *NodeList) OnConnectedToDomain(fn func()) {
	n.mu.Lock()
	n.onConnectedToDomain = fn
	n.mu.Unlock()
}

func (n *NodeList) OnNodeAdded(fn func(Node)) {
	n.mu.Lock()
	n.onNodeAdded = fn
	n.mu.Unlock()
}

func (n *NodeList) OnNodeActivated(fn func(Node)) {
	n.mu.Lock()
	n.onNodeActivated = fn
	n.mu.Unlock()
}

func (n *NodeList) OnNodeKilled(fn func(Node)) {
	n.mu.Lock()
	n.onNodeKilled = fn
	n.mu.Unlock()
}

func (n *NodeList) OnClientStateChanged(fn func(protocol.NodeType, ClientState)) {
	n.mu.Lock()
	n.onClientStateChanged = fn
	n.mu.Unlock()
}

// DomainState returns the current domain state and refusal reason.
func (n *NodeList) DomainState() (DomainState, string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.domain.State, n.domain.RefusalReason
}

// SessionUUID returns the session UUID assigned by the domain, or the
// zero UUID before the first DomainList.
func (n *NodeList) SessionUUID() uuid.UUID {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.domain.SessionUUID
}

// ClientStateOf reports the state of one assignment-client slot.
func (n *NodeList) ClientStateOf(t protocol.NodeType) ClientState {
	n.mu.Lock()
	node := n.nodeByTypeLocked(t)
	present := node != nil
	activated := present && node.Active != NoSocket
	n.mu.Unlock()

	if !present {
		return ClientUnavailable
	}
	if activated && n.transport.StateOf(t) == socket.Connected {
		return ClientConnected
	}
	return ClientDisconnected
}

// Connect starts (or restarts) the domain-join protocol against url.
// The check-in loop drives everything else; recovery from transport
// interruptions needs no caller involvement.
func (n *NodeList) Connect(ctx context.Context, url string) {
	n.mu.Lock()
	if n.domain.State == DomainConnecting || n.domain.State == DomainConnected {
		n.mu.Unlock()
		return
	}
	n.domain.URL = url
	n.domain.RefusalReason = ""
	n.setDomainStateLocked(DomainConnecting, "")

	// Reset barrier: give the previous session's peer connections time
	// to finish tearing down before redialing the same host.
	var delay time.Duration
	if !n.lastDisconnect.IsZero() {
		if since := time.Since(n.lastDisconnect); since < n.cfg.ReconnectMinDelay {
			delay = n.cfg.ReconnectMinDelay - since
		}
	}

	cctx, cancel := context.WithCancel(ctx)
	n.connectCtx = cctx
	n.cancelCheckIn = cancel
	n.mu.Unlock()

	go n.checkInLoop(cctx, delay)
}

// checkInLoop fires the 1 Hz check-in until the session is cancelled.
func (n *NodeList) checkInLoop(ctx context.Context, initialDelay time.Duration) {
	if initialDelay > 0 {
		select {
		case <-time.After(initialDelay):
		case <-ctx.Done():
			return
		}
	}

	ticker := time.NewTicker(n.cfg.CheckInPeriod)
	defer ticker.Stop()

	n.checkIn(ctx)
	for {
		select {
		case <-ticker.C:
			n.checkIn(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// checkIn performs one protocol tick: drive the domain-server peer slot
// toward Connected, then send the appropriate request, then run roster
// maintenance.
func (n *NodeList) checkIn(ctx context.Context) {
	n.mu.Lock()
	url := n.domain.URL
	state := n.domain.State
	joined := n.joined
	n.mu.Unlock()

	switch n.transport.StateOf(protocol.NodeTypeDomainServer) {
	case socket.Unconnected:
		if state == DomainConnected {
			// Transport dropped under us: fall back to CONNECTING and
			// let the next ticks re-establish everything.
			n.mu.Lock()
			n.joined = false
			n.setDomainStateLocked(DomainConnecting, "")
			n.mu.Unlock()
		}
		util.LogInfo("check-in: opening connection to domain server at %s", url)
		n.transport.ConnectToHost(ctx, url, protocol.NodeTypeDomainServer, func(id int) {
			util.LogDebug("check-in: domain server data channel ID %d", id)
		})

	case socket.Connecting:
		// Negotiation in flight; try again next tick.

	case socket.Connected:
		if state == DomainRefused {
			// Refused: hold off until disconnect()/connect() or a
			// spontaneous DomainList changes our standing.
			break
		}
		if !joined {
			n.sendToDomain(protocol.PacketTypeDomainConnectRequest,
				(&ConnectRequest{OwnerType: protocol.NodeTypeAgent}).Encode())
		} else {
			n.sendToDomain(protocol.PacketTypeDomainListRequest,
				(&ConnectRequest{OwnerType: protocol.NodeTypeAgent}).Encode())
		}
	}

	n.pruneSilentNodes()
	n.pingPendingNodes()
	n.refreshClientStates()
}

// sendToDomain frames and sends one packet to the domain server.
func (n *NodeList) sendToDomain(t protocol.PacketType, payload []byte) {
	n.sendToNode(protocol.NodeTypeDomainServer, t, payload)
}

// SendToNode frames and sends one packet to the given node. Reports
// whether the packet reached an open data channel.
func (n *NodeList) SendToNode(nodeType protocol.NodeType, t protocol.PacketType, payload []byte) bool {
	return n.sendToNode(nodeType, t, payload)
}

func (n *NodeList) sendToNode(nodeType protocol.NodeType, t protocol.PacketType, payload []byte) bool {
	n.mu.Lock()
	sender := n.domain.SessionUUID
	n.mu.Unlock()

	data := protocol.Encode(&protocol.Packet{
		SequenceNumber: n.seq.Next(),
		Type:           t,
		Version:        protocol.VersionForPacketType(t),
		SenderID:       sender,
		Payload:        payload,
	})
	if len(data) > n.cfg.MaxPacketSize {
		util.LogError("node list: packet type 0x%02x exceeds max packet size (%d > %d)",
			uint8(t), len(data), n.cfg.MaxPacketSize)
		return false
	}
	return n.transport.WriteDatagram(nodeType, data)
}

// touchNode refreshes the last-heard timestamp for the sending node.
func (n *NodeList) touchNode(t protocol.NodeType) {
	n.mu.Lock()
	if node := n.nodeByTypeLocked(t); node != nil {
		node.LastHeard = time.Now()
	}
	n.mu.Unlock()
}

func (n *NodeList) nodeByTypeLocked(t protocol.NodeType) *Node {
	for _, node := range n.nodes {
		if node.Type == t {
			return node
		}
	}
	return nil
}

// processDomainList applies a roster update from the domain server.
func (n *NodeList) processDomainList(_ protocol.NodeType, pkt *protocol.Packet) {
	list, err := DecodeDomainList(pkt.Payload)
	if err != nil {
		util.LogWarning("node list: bad DomainList: %v", err)
		return
	}

	n.mu.Lock()
	firstList := !n.joined
	n.joined = true
	n.domain.LocalID = list.LocalID
	n.domain.SessionUUID = list.SessionUUID
	stateChanged := n.domain.State != DomainConnected
	if stateChanged {
		// Covers both the initial join and a server that stopped
		// refusing us.
		n.setDomainStateLocked(DomainConnected, "")
	}

	ctx := n.connectCtx
	url := n.domain.URL
	advertised := make(map[uuid.UUID]bool, len(list.Nodes))
	var added []Node

	for _, ln := range list.Nodes {
		if ln.Type == protocol.NodeTypeDomainServer {
			continue
		}
		advertised[ln.UUID] = true
		if node, ok := n.nodes[ln.UUID]; ok {
			node.PublicAddress = ln.PublicAddress
			node.LocalAddress = ln.LocalAddress
			node.LocalID = ln.LocalID
			node.LastHeard = time.Now()
			continue
		}
		node := &Node{
			UUID:          ln.UUID,
			Type:          ln.Type,
			PublicAddress: ln.PublicAddress,
			LocalAddress:  ln.LocalAddress,
			LocalID:       ln.LocalID,
			LastHeard:     time.Now(),
		}
		n.nodes[ln.UUID] = node
		added = append(added, *node)
	}

	var removed []*Node
	for id, node := range n.nodes {
		if !advertised[id] {
			removed = append(removed, node)
		}
	}

	onConnected := n.onConnectedToDomain
	onAdded := n.onNodeAdded
	n.mu.Unlock()

	if firstList && onConnected != nil {
		onConnected()
	}
	for _, node := range added {
		util.Stats.AddNode()
		util.LogInfo("node list: added %s %s", node.Type, node.UUID)
		if onAdded != nil {
			onAdded(node)
		}
		if ctx != nil {
			n.transport.ConnectToHost(ctx, url, node.Type, nil)
		}
	}
	for _, node := range removed {
		n.killNode(node, "absent from domain list")
	}
	n.refreshClientStates()
}

// processConnectionDenied latches the REFUSED state with the server's
// human-readable reason.
func (n *NodeList) processConnectionDenied(_ protocol.NodeType, pkt *protocol.Packet) {
	denied, err := DecodeConnectionDenied(pkt.Payload)
	if err != nil {
		util.LogWarning("node list: bad DomainConnectionDenied: %v", err)
		return
	}

	util.LogWarning("node list: domain connection denied: %s", denied.Reason)
	n.mu.Lock()
	n.domain.RefusalReason = denied.Reason
	n.setDomainStateLocked(DomainRefused, denied.Reason)
	n.mu.Unlock()
}

// processRemovedNode kills the node named by the server. A kill for an
// unknown UUID is ignored.
func (n *NodeList) processRemovedNode(_ protocol.NodeType, pkt *protocol.Packet) {
	removed, err := DecodeRemovedNode(pkt.Payload)
	if err != nil {
		util.LogWarning("node list: bad DomainServerRemovedNode: %v", err)
		return
	}

	n.mu.Lock()
	node := n.nodes[removed.UUID]
	n.mu.Unlock()
	if node == nil {
		util.LogDebug("node list: removal of unknown node %s", removed.UUID)
		return
	}
	n.killNode(node, "removed by domain server")
	n.refreshClientStates()
}

// processPing answers an inbound probe with a reply echoing its payload.
func (n *NodeList) processPing(from protocol.NodeType, pkt *protocol.Packet) {
	ping, err := DecodePing(pkt.Payload)
	if err != nil {
		util.LogWarning("node list: bad Ping: %v", err)
		return
	}
	n.sendToNode(from, protocol.PacketTypePingReply, ping.Encode())
}

// processPingReply latches the first replying address as the node's
// active socket.
func (n *NodeList) processPingReply(from protocol.NodeType, pkt *protocol.Packet) {
	reply, err := DecodePing(pkt.Payload)
	if err != nil {
		util.LogWarning("node list: bad PingReply: %v", err)
		return
	}

	n.mu.Lock()
	node := n.nodeByTypeLocked(from)
	var activated *Node
	if node != nil && node.Active == NoSocket {
		if reply.PingType == PingLocal {
			node.Active = LocalSocket
		} else {
			node.Active = PublicSocket
		}
		node.LastHeard = time.Now()
		copied := *node
		activated = &copied
	}
	onActivated := n.onNodeActivated
	n.mu.Unlock()

	if activated != nil {
		util.LogInfo("node list: activated %s %s via %s socket",
			activated.Type, activated.UUID, activated.Active)
		if onActivated != nil {
			onActivated(*activated)
		}
		n.refreshClientStates()
	}
}

// pingPendingNodes probes both advertised addresses of every connected
// but not yet activated node.
func (n *NodeList) pingPendingNodes() {
	n.mu.Lock()
	var targets []protocol.NodeType
	for _, node := range n.nodes {
		if node.Active == NoSocket {
			targets = append(targets, node.Type)
		}
	}
	n.mu.Unlock()

	now := uint64(time.Now().UnixMicro())
	for _, t := range targets {
		if n.transport.StateOf(t) != socket.Connected {
			continue
		}
		n.sendToNode(t, protocol.PacketTypePing, (&Ping{PingType: PingLocal, Timestamp: now}).Encode())
		n.sendToNode(t, protocol.PacketTypePing, (&Ping{PingType: PingPublic, Timestamp: now}).Encode())
	}
}

// pruneSilentNodes kills every roster node that has not been heard from
// within the silent-node timeout. The domain server itself is exempt:
// its liveness is the check-in protocol's business.
func (n *NodeList) pruneSilentNodes() {
	n.mu.Lock()
	cutoff := time.Now().Add(-n.cfg.SilentNodeTimeout)
	var silent []*Node
	for _, node := range n.nodes {
		if node.LastHeard.Before(cutoff) {
			silent = append(silent, node)
		}
	}
	n.mu.Unlock()

	for _, node := range silent {
		n.killNode(node, "silent")
	}
}

// killNode closes the node's data channel, removes it from the roster
// and reports the kill.
func (n *NodeList) killNode(node *Node, reason string) {
	n.mu.Lock()
	if n.nodes[node.UUID] != node {
		n.mu.Unlock()
		return
	}
	delete(n.nodes, node.UUID)
	copied := *node
	onKilled := n.onNodeKilled
	n.mu.Unlock()

	n.transport.CloseNode(node.Type)
	util.Stats.KillNode()
	util.LogInfo("node list: killed %s %s (%s)", node.Type, node.UUID, reason)
	if onKilled != nil {
		onKilled(copied)
	}
}

// Disconnect leaves the domain: best-effort disconnect packet, roster
// cleared, every channel closed. Idempotent and synchronous.
func (n *NodeList) Disconnect() {
	n.mu.Lock()
	if n.cancelCheckIn != nil {
		n.cancelCheckIn()
		n.cancelCheckIn = nil
	}
	wasConnected := n.domain.State == DomainConnected
	n.mu.Unlock()

	if wasConnected {
		n.sendToDomain(protocol.PacketTypeDomainDisconnectRequest, nil)
	}

	n.mu.Lock()
	var killed []Node
	for _, node := range n.nodes {
		killed = append(killed, *node)
	}
	n.nodes = make(map[uuid.UUID]*Node)
	n.joined = false
	n.domain.SessionUUID = uuid.Nil
	n.setDomainStateLocked(DomainDisconnected, "")
	n.lastDisconnect = time.Now()
	onKilled := n.onNodeKilled
	n.mu.Unlock()

	for _, node := range killed {
		util.Stats.KillNode()
		if onKilled != nil {
			onKilled(node)
		}
	}

	n.transport.ClearConnections()
	n.refreshClientStates()
}

// setDomainStateLocked transitions the domain state and schedules the
// callback. Caller holds n.mu; the callback fires on a fresh goroutine
// so listeners may call back into the node list.
func (n *NodeList) setDomainStateLocked(s DomainState, reason string) {
	if n.domain.State == s {
		return
	}
	n.domain.State = s
	if fn := n.onDomainStateChanged; fn != nil {
		go fn(s, reason)
	}
}

// refreshClientStates recomputes every assignment-client slot and
// reports transitions.
func (n *NodeList) refreshClientStates() {
	for _, t := range assignmentTypes {
		state := n.ClientStateOf(t)

		n.mu.Lock()
		prev, seen := n.clientStates[t]
		if !seen {
			prev = ClientUnavailable
		}
		changed := prev != state
		if changed {
			n.clientStates[t] = state
		}
		fn := n.onClientStateChanged
		n.mu.Unlock()

		if changed && fn != nil {
			fn(t, state)
		}
	}
}
