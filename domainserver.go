package vista

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/nodelist"
	"github.com/vistaverse/vista/internal/util"
)

// DomainServerState is the observable domain connection state.
type DomainServerState int

const (
	Disconnected DomainServerState = iota
	Connecting
	Connected
	Refused
	Error
)

// String returns the state name.
func (s DomainServerState) String() string {
	switch s {
	case Disconnected:
		return "DISCONNECTED"
	case Connecting:
		return "CONNECTING"
	case Connected:
		return "CONNECTED"
	case Refused:
		return "REFUSED"
	case Error:
		return "ERROR"
	default:
		return "Unknown"
	}
}

// DomainServer is the SDK handle for the domain connection of one
// context. Connect and Disconnect are non-blocking; progress is reported
// through OnStateChanged.
type DomainServer struct {
	contextID int
	dc        *domainContext

	mu             sync.Mutex
	state          DomainServerState
	errorInfo      string
	onStateChanged func(DomainServerState, string)
}

// NewDomainServer attaches a domain-server handle to a context.
func NewDomainServer(contextID int) *DomainServer {
	d := &DomainServer{
		contextID: contextID,
		dc:        contextFor(contextID),
		state:     Disconnected,
	}

	d.dc.nodes.OnDomainStateChanged(func(s nodelist.DomainState, reason string) {
		d.setState(mapDomainState(s), reason)
	})

	return d
}

func mapDomainState(s nodelist.DomainState) DomainServerState {
	switch s {
	case nodelist.DomainConnecting:
		return Connecting
	case nodelist.DomainConnected:
		return Connected
	case nodelist.DomainRefused:
		return Refused
	case nodelist.DomainError:
		return Error
	default:
		return Disconnected
	}
}

// ContextID returns the SDK context this handle is attached to.
func (d *DomainServer) ContextID() int { return d.contextID }

// State returns the current connection state and, for REFUSED or ERROR,
// the reason.
func (d *DomainServer) State() (DomainServerState, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state, d.errorInfo
}

// SessionUUID returns the session UUID assigned by the domain.
func (d *DomainServer) SessionUUID() uuid.UUID {
	return d.dc.nodes.SessionUUID()
}

// OnStateChanged registers the state callback. It fires off the SDK's
// internal goroutines and must not block.
func (d *DomainServer) OnStateChanged(fn func(DomainServerState, string)) {
	d.mu.Lock()
	d.onStateChanged = fn
	d.mu.Unlock()
}

// Connect starts a session against the domain's signaling URL
// (ws:// or wss://). An invalid URL moves the handle to ERROR without
// touching the network.
func (d *DomainServer) Connect(rawURL string) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "ws" && u.Scheme != "wss") {
		util.LogError("domain server: invalid signaling URL %q", rawURL)
		d.setState(Error, fmt.Sprintf("invalid signaling URL: %s", rawURL))
		return
	}

	d.dc.nodes.Connect(background(), rawURL)
}

// Disconnect leaves the domain and releases every channel. Idempotent.
func (d *DomainServer) Disconnect() {
	d.dc.nodes.Disconnect()
}

// setState applies a transition and fires the callback.
func (d *DomainServer) setState(s DomainServerState, info string) {
	d.mu.Lock()
	if d.state == s && d.errorInfo == info {
		d.mu.Unlock()
		return
	}
	d.state = s
	d.errorInfo = info
	fn := d.onStateChanged
	d.mu.Unlock()

	if fn != nil {
		fn(s, info)
	}
}
