package nodelist

import (
	"sync"

	"github.com/vistaverse/vista/internal/protocol"
	"github.com/vistaverse/vista/internal/util"
)

// Listener handles one decoded packet from a remote node. Listeners run
// on the socket's delivery goroutine and must not block on network I/O.
type Listener func(from protocol.NodeType, pkt *protocol.Packet)

// PacketReceiver dispatches received packets to the listener registered
// for their type. Unknown types are logged once, then dropped silently.
type PacketReceiver struct {
	mu        sync.Mutex
	listeners map[protocol.PacketType]Listener
	warned    map[protocol.PacketType]bool
}

// NewPacketReceiver creates an empty receiver.
func NewPacketReceiver() *PacketReceiver {
	return &PacketReceiver{
		listeners: make(map[protocol.PacketType]Listener),
		warned:    make(map[protocol.PacketType]bool),
	}
}

// RegisterListener binds a packet type to a listener, replacing any
// previous binding.
func (r *PacketReceiver) RegisterListener(t protocol.PacketType, fn Listener) {
	r.mu.Lock()
	r.listeners[t] = fn
	r.mu.Unlock()
}

// Handle decodes raw datagram bytes and dispatches to the matching
// listener.
func (r *PacketReceiver) Handle(from protocol.NodeType, data []byte) {
	pkt, err := protocol.Decode(data)
	if err != nil {
		util.LogWarning("receiver: dropping malformed packet from %s: %v", from, err)
		return
	}

	r.mu.Lock()
	fn := r.listeners[pkt.Type]
	warn := false
	if fn == nil && !r.warned[pkt.Type] {
		r.warned[pkt.Type] = true
		warn = true
	}
	r.mu.Unlock()

	if fn == nil {
		if warn {
			util.LogWarning("receiver: no listener for packet type 0x%02x", uint8(pkt.Type))
		}
		return
	}
	fn(from, pkt)
}
