package nodelist

import (
	"github.com/google/uuid"
)

// DomainState is the observable lifecycle of the domain connection.
type DomainState int

const (
	DomainDisconnected DomainState = iota
	DomainConnecting
	DomainConnected
	DomainRefused
	DomainError
)

// String returns the domain state name for logs.
func (s DomainState) String() string {
	switch s {
	case DomainDisconnected:
		return "DISCONNECTED"
	case DomainConnecting:
		return "CONNECTING"
	case DomainConnected:
		return "CONNECTED"
	case DomainRefused:
		return "REFUSED"
	case DomainError:
		return "ERROR"
	default:
		return "Unknown"
	}
}

// DomainHandler tracks the domain server itself. The domain server is
// deliberately not a roster Node: its liveness is governed by the
// check-in protocol, not by silent-node pruning.
type DomainHandler struct {
	URL           string
	LocalID       uint16
	SessionUUID   uuid.UUID
	State         DomainState
	RefusalReason string
}
