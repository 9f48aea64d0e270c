// Package nodelist maintains the roster of remote nodes and runs the
// domain-join protocol: check-in ticks, DomainList processing, node
// activation by ping/pong, silent-node pruning and reconnect recovery.
package nodelist

import (
	"time"

	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/protocol"
)

// ActiveSocket records which of a node's advertised addresses answered
// a ping first.
type ActiveSocket int

const (
	NoSocket ActiveSocket = iota
	LocalSocket
	PublicSocket
)

// String returns the active-socket name for logs.
func (a ActiveSocket) String() string {
	switch a {
	case LocalSocket:
		return "local"
	case PublicSocket:
		return "public"
	default:
		return "none"
	}
}

// Node is the roster record for one remote assignment client. The UUID
// is immutable after creation; addresses and timestamps are refreshed by
// subsequent DomainLists and received packets.
type Node struct {
	UUID          uuid.UUID
	Type          protocol.NodeType
	PublicAddress string
	LocalAddress  string
	LocalID       uint16
	Active        ActiveSocket
	LastHeard     time.Time
}
