// Package vista is the client SDK for real-time virtual-world domains.
// A client joins a domain over WebRTC data channels negotiated through a
// WebSocket signaling endpoint, keeps a roster of the domain's assignment
// clients, and exchanges typed entity data with the entity server.
//
// The SDK surface is context-based: NewContext creates an independent
// client context (its own socket and node roster), and DomainServer,
// AvatarMixer, AudioMixer, EntityServer and MessagesMixer attach to a
// context by ID.
package vista

import (
	"context"
	"sync"
	"time"

	"github.com/vistaverse/vista/internal/nodelist"
	"github.com/vistaverse/vista/internal/protocol"
	"github.com/vistaverse/vista/internal/socket"
)

// Config carries the tunables of one SDK context. The zero value uses
// the standard defaults.
type Config struct {
	MaxPacketSize     int           // bytes per packet, default 1492 (data-channel MTU)
	CheckInPeriod     time.Duration // domain check-in tick, default 1s
	SilentNodeTimeout time.Duration // node kill threshold, default 2s
	ReconnectMinDelay time.Duration // reset barrier before redial, default 500ms
}

// domainContext bundles the per-context machinery: the socket and the
// node list that owns it.
type domainContext struct {
	sock          *socket.Socket
	nodes         *nodelist.NodeList
	maxPacketSize int

	mu        sync.Mutex
	listeners map[protocol.NodeType][]func(nodelist.ClientState)
}

var (
	contextsMu    sync.Mutex
	contexts      = make(map[int]*domainContext)
	nextContextID int
)

// NewContext creates an independent SDK context and returns its ID.
func NewContext(cfg Config) int {
	maxPacketSize := cfg.MaxPacketSize
	if maxPacketSize == 0 {
		maxPacketSize = 1492
	}

	sock := socket.New()
	dc := &domainContext{
		sock:          sock,
		maxPacketSize: maxPacketSize,
		nodes: nodelist.New(nodelist.Config{
			CheckInPeriod:     cfg.CheckInPeriod,
			SilentNodeTimeout: cfg.SilentNodeTimeout,
			ReconnectMinDelay: cfg.ReconnectMinDelay,
			MaxPacketSize:     cfg.MaxPacketSize,
		}, sock),
		listeners: make(map[protocol.NodeType][]func(nodelist.ClientState)),
	}

	dc.nodes.OnClientStateChanged(func(t protocol.NodeType, s nodelist.ClientState) {
		dc.mu.Lock()
		fns := append([]func(nodelist.ClientState){}, dc.listeners[t]...)
		dc.mu.Unlock()
		for _, fn := range fns {
			fn(s)
		}
	})

	contextsMu.Lock()
	id := nextContextID
	nextContextID++
	contexts[id] = dc
	contextsMu.Unlock()
	return id
}

// contextFor resolves a context ID; it panics on an unknown ID, which
// always indicates a programming error in the caller.
func contextFor(id int) *domainContext {
	contextsMu.Lock()
	defer contextsMu.Unlock()
	dc, ok := contexts[id]
	if !ok {
		panic("vista: unknown context ID")
	}
	return dc
}

// subscribeClientState registers a state listener for one assignment
// client type.
func (dc *domainContext) subscribeClientState(t protocol.NodeType, fn func(nodelist.ClientState)) {
	dc.mu.Lock()
	dc.listeners[t] = append(dc.listeners[t], fn)
	dc.mu.Unlock()
}

// background is the root context for a domain session's network
// goroutines; sessions end via DomainServer.Disconnect, not cancellation.
func background() context.Context { return context.Background() }
