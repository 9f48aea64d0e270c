// Package socket implements the one-to-many datagram socket: one
// signaling channel multiplexed into per-node WebRTC data channels, with
// a route table keyed by remote node type.
package socket

import (
	"context"
	"sync"

	"github.com/vistaverse/vista/internal/protocol"
	"github.com/vistaverse/vista/internal/signaling"
	"github.com/vistaverse/vista/internal/util"
	"github.com/vistaverse/vista/internal/webrtc"
)

// State is the connection state of one peer slot.
type State int

const (
	Unconnected State = iota
	Connecting
	Connected
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case Unconnected:
		return "Unconnected"
	case Connecting:
		return "Connecting"
	case Connected:
		return "Connected"
	default:
		return "Unknown"
	}
}

// Datagram is one received payload tagged with its source node type.
type Datagram struct {
	From protocol.NodeType
	Data []byte
}

// pendingOpen is a data-channel request deferred until the signaling
// channel finishes opening.
type pendingOpen struct {
	nodeType    protocol.NodeType
	onChannelID func(int)
}

// Socket owns exactly one signaling channel and the data channels keyed
// by remote node type. It is the only component allowed to close either.
type Socket struct {
	mu            sync.Mutex
	signal        *signaling.Channel
	channels      map[protocol.NodeType]*webrtc.DataChannel
	byID          map[int]*webrtc.DataChannel
	nextChannelID int
	pending       []pendingOpen

	onDatagram func(Datagram)
}

// New creates an empty socket.
func New() *Socket {
	return &Socket{
		channels: make(map[protocol.NodeType]*webrtc.DataChannel),
		byID:     make(map[int]*webrtc.DataChannel),
	}
}

// OnDatagram registers the receive callback. It runs on the data
// channels' delivery goroutines and must not block on network I/O.
func (s *Socket) OnDatagram(fn func(Datagram)) {
	s.mu.Lock()
	s.onDatagram = fn
	s.mu.Unlock()
}

// ConnectToHost ensures the signaling channel to url is open (or
// opening) and starts data-channel negotiation to the given node type.
// Non-blocking: negotiation proceeds in the background and the assigned
// signaling correlation ID is reported through onChannelID.
func (s *Socket) ConnectToHost(ctx context.Context, url string, nodeType protocol.NodeType, onChannelID func(int)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.signal == nil || s.signal.State() == signaling.Closed {
		sig := signaling.NewChannel()
		s.signal = sig
		s.wireSignaling(sig)
		sig.Open(ctx, url)
	}

	if existing, ok := s.channels[nodeType]; ok {
		if st := existing.ReadyState(); st == webrtc.Connecting || st == webrtc.Open {
			return
		}
	}

	if s.signal.State() == signaling.Open {
		s.openChannelLocked(nodeType, onChannelID)
		return
	}
	s.pending = append(s.pending, pendingOpen{nodeType: nodeType, onChannelID: onChannelID})
}

// openChannelLocked creates a data channel and installs it in the route
// table. Caller holds s.mu.
func (s *Socket) openChannelLocked(nodeType protocol.NodeType, onChannelID func(int)) {
	id := s.nextChannelID
	s.nextChannelID++

	ch, err := webrtc.NewDataChannel(nodeType, id, s.signal)
	if err != nil {
		util.LogError("socket: failed to create data channel to %s: %v", nodeType, err)
		return
	}

	s.channels[nodeType] = ch
	s.byID[id] = ch

	ch.OnMessage(func(data []byte) {
		util.Stats.AddRecv(len(data))
		s.mu.Lock()
		onDatagram := s.onDatagram
		s.mu.Unlock()
		if onDatagram != nil {
			onDatagram(Datagram{From: nodeType, Data: data})
		}
	})

	ch.OnClose(func() {
		s.mu.Lock()
		if s.channels[nodeType] == ch {
			delete(s.channels, nodeType)
		}
		delete(s.byID, id)
		s.mu.Unlock()
	})

	if onChannelID != nil {
		onChannelID(id)
	}
}

// wireSignaling routes inbound signaling traffic to the owning data
// channel and flushes deferred channel opens once the WebSocket is up.
func (s *Socket) wireSignaling(sig *signaling.Channel) {
	sig.OnOpen(func() {
		s.mu.Lock()
		if s.signal != sig {
			s.mu.Unlock()
			return
		}
		pending := s.pending
		s.pending = nil
		for _, p := range pending {
			s.openChannelLocked(p.nodeType, p.onChannelID)
		}
		s.mu.Unlock()
	})

	sig.OnMessage(func(msg *signaling.Message) {
		s.mu.Lock()
		var ch *webrtc.DataChannel
		if msg.ChannelID != nil {
			ch = s.byID[*msg.ChannelID]
		}
		if ch == nil && msg.From != nil {
			ch = s.channels[protocol.NodeType(*msg.From)]
		}
		s.mu.Unlock()

		if ch == nil {
			util.LogDebug("socket: signaling message with no matching channel")
			return
		}
		ch.HandleSignal(msg)
	})

	sig.OnClose(func() {
		s.mu.Lock()
		if s.signal != sig {
			s.mu.Unlock()
			return
		}
		s.pending = nil
		channels := make([]*webrtc.DataChannel, 0, len(s.channels))
		for _, ch := range s.channels {
			channels = append(channels, ch)
		}
		s.mu.Unlock()

		// Channels still negotiating cannot complete without signaling.
		for _, ch := range channels {
			ch.SignalingClosed()
		}
	})
}

// WriteDatagram sends bytes to the given node. Reports whether the
// payload was handed to an open data channel.
func (s *Socket) WriteDatagram(nodeType protocol.NodeType, data []byte) bool {
	s.mu.Lock()
	ch := s.channels[nodeType]
	s.mu.Unlock()
	if ch == nil {
		return false
	}
	return ch.Send(data)
}

// StateOf reports the connection state of the peer slot for a node type.
func (s *Socket) StateOf(nodeType protocol.NodeType) State {
	s.mu.Lock()
	ch := s.channels[nodeType]
	pending := false
	for _, p := range s.pending {
		if p.nodeType == nodeType {
			pending = true
			break
		}
	}
	s.mu.Unlock()

	if ch == nil {
		if pending {
			return Connecting
		}
		return Unconnected
	}
	switch ch.ReadyState() {
	case webrtc.Connecting:
		return Connecting
	case webrtc.Open:
		return Connected
	default:
		return Unconnected
	}
}

// CloseNode closes the data channel for one node type, leaving the
// signaling channel and other peers untouched.
func (s *Socket) CloseNode(nodeType protocol.NodeType) {
	s.mu.Lock()
	ch := s.channels[nodeType]
	if ch != nil {
		delete(s.channels, nodeType)
		delete(s.byID, ch.ChannelID())
	}
	s.mu.Unlock()
	if ch != nil {
		ch.Close()
	}
}

// ClearConnections closes every data channel and the signaling channel,
// emptying the route table. The socket is immediately reusable: the next
// ConnectToHost reopens signaling from scratch.
func (s *Socket) ClearConnections() {
	s.mu.Lock()
	channels := make([]*webrtc.DataChannel, 0, len(s.channels))
	for _, ch := range s.channels {
		channels = append(channels, ch)
	}
	s.channels = make(map[protocol.NodeType]*webrtc.DataChannel)
	s.byID = make(map[int]*webrtc.DataChannel)
	s.pending = nil
	sig := s.signal
	s.signal = nil
	s.mu.Unlock()

	for _, ch := range channels {
		ch.Close()
	}
	if sig != nil {
		sig.Close()
	}
}

// Abort tears everything down without ceremony. Equivalent to
// ClearConnections for this transport: WebRTC close is already abrupt.
func (s *Socket) Abort() {
	s.ClearConnections()
}
