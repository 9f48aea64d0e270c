package vista

import (
	"sync"

	"github.com/vistaverse/vista/internal/nodelist"
	"github.com/vistaverse/vista/internal/protocol"
)

// AssignmentClientState is the observable state of one assignment-client
// slot: UNAVAILABLE when the domain has not advertised the node,
// DISCONNECTED while its channel is down or unprobed, CONNECTED once the
// node is activated.
type AssignmentClientState int

const (
	Unavailable AssignmentClientState = iota
	ClientDisconnected
	ClientConnected
)

// String returns the state name.
func (s AssignmentClientState) String() string {
	switch s {
	case Unavailable:
		return "UNAVAILABLE"
	case ClientDisconnected:
		return "DISCONNECTED"
	case ClientConnected:
		return "CONNECTED"
	default:
		return "Unknown"
	}
}

func mapClientState(s nodelist.ClientState) AssignmentClientState {
	switch s {
	case nodelist.ClientDisconnected:
		return ClientDisconnected
	case nodelist.ClientConnected:
		return ClientConnected
	default:
		return Unavailable
	}
}

// assignmentClient is the shared handle behind the typed mixer wrappers.
type assignmentClient struct {
	dc       *domainContext
	nodeType protocol.NodeType

	mu             sync.Mutex
	onStateChanged func(AssignmentClientState)
}

func newAssignmentClient(contextID int, nodeType protocol.NodeType) *assignmentClient {
	a := &assignmentClient{
		dc:       contextFor(contextID),
		nodeType: nodeType,
	}
	a.dc.subscribeClientState(nodeType, func(s nodelist.ClientState) {
		a.mu.Lock()
		fn := a.onStateChanged
		a.mu.Unlock()
		if fn != nil {
			fn(mapClientState(s))
		}
	})
	return a
}

// State returns the current slot state.
func (a *assignmentClient) State() AssignmentClientState {
	return mapClientState(a.dc.nodes.ClientStateOf(a.nodeType))
}

// OnStateChanged registers the state callback.
func (a *assignmentClient) OnStateChanged(fn func(AssignmentClientState)) {
	a.mu.Lock()
	a.onStateChanged = fn
	a.mu.Unlock()
}

// AvatarMixer is the SDK handle for the avatar mixer slot.
type AvatarMixer struct{ *assignmentClient }

// NewAvatarMixer attaches an avatar-mixer handle to a context.
func NewAvatarMixer(contextID int) *AvatarMixer {
	return &AvatarMixer{newAssignmentClient(contextID, protocol.NodeTypeAvatarMixer)}
}

// AudioMixer is the SDK handle for the audio mixer slot.
type AudioMixer struct{ *assignmentClient }

// NewAudioMixer attaches an audio-mixer handle to a context.
func NewAudioMixer(contextID int) *AudioMixer {
	return &AudioMixer{newAssignmentClient(contextID, protocol.NodeTypeAudioMixer)}
}

// MessagesMixer is the SDK handle for the messages mixer slot.
type MessagesMixer struct{ *assignmentClient }

// NewMessagesMixer attaches a messages-mixer handle to a context.
func NewMessagesMixer(contextID int) *MessagesMixer {
	return &MessagesMixer{newAssignmentClient(contextID, protocol.NodeTypeMessagesMixer)}
}
