package nodelist

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/protocol"
)

// Wire codecs for the domain protocol payloads. Scalars are
// little-endian; UUIDs are 16 bytes big-endian; strings carry a uint16
// length prefix.

func appendString(buf []byte, s string) []byte {
	var l [2]byte
	binary.LittleEndian.PutUint16(l[:], uint16(len(s)))
	return append(append(buf, l[:]...), s...)
}

func readString(buf []byte) (string, []byte, error) {
	if len(buf) < 2 {
		return "", nil, fmt.Errorf("string field truncated")
	}
	n := int(binary.LittleEndian.Uint16(buf))
	if len(buf) < 2+n {
		return "", nil, fmt.Errorf("string field truncated")
	}
	return string(buf[2 : 2+n]), buf[2+n:], nil
}

// ConnectRequest is the body of DomainConnectRequest and
// DomainListRequest check-ins.
type ConnectRequest struct {
	OwnerType protocol.NodeType
}

// Encode serializes the check-in body.
func (r *ConnectRequest) Encode() []byte {
	return []byte{byte(r.OwnerType)}
}

// DecodeConnectRequest parses a check-in body.
func DecodeConnectRequest(buf []byte) (*ConnectRequest, error) {
	if len(buf) < 1 {
		return nil, fmt.Errorf("connect request truncated")
	}
	return &ConnectRequest{OwnerType: protocol.NodeType(buf[0])}, nil
}

// ListedNode is one assignment client advertised in a DomainList.
type ListedNode struct {
	Type          protocol.NodeType
	UUID          uuid.UUID
	PublicAddress string
	LocalAddress  string
	LocalID       uint16
}

// DomainList is the domain server's roster reply.
type DomainList struct {
	LocalID     uint16
	SessionUUID uuid.UUID
	Nodes       []ListedNode
}

// Encode serializes a DomainList body.
func (l *DomainList) Encode() []byte {
	buf := make([]byte, 0, 64)

	var u16 [2]byte
	binary.LittleEndian.PutUint16(u16[:], l.LocalID)
	buf = append(buf, u16[:]...)

	var id [16]byte
	protocol.PutUUID(id[:], l.SessionUUID)
	buf = append(buf, id[:]...)

	binary.LittleEndian.PutUint16(u16[:], uint16(len(l.Nodes)))
	buf = append(buf, u16[:]...)

	for _, n := range l.Nodes {
		buf = append(buf, byte(n.Type))
		protocol.PutUUID(id[:], n.UUID)
		buf = append(buf, id[:]...)
		buf = appendString(buf, n.PublicAddress)
		buf = appendString(buf, n.LocalAddress)
		binary.LittleEndian.PutUint16(u16[:], n.LocalID)
		buf = append(buf, u16[:]...)
	}
	return buf
}

// DecodeDomainList parses a DomainList body.
func DecodeDomainList(buf []byte) (*DomainList, error) {
	if len(buf) < 2+16+2 {
		return nil, fmt.Errorf("domain list truncated")
	}
	l := &DomainList{LocalID: binary.LittleEndian.Uint16(buf)}
	l.SessionUUID = protocol.ReadUUID(buf[2:])
	count := int(binary.LittleEndian.Uint16(buf[18:]))
	buf = buf[20:]

	for i := 0; i < count; i++ {
		if len(buf) < 1+16 {
			return nil, fmt.Errorf("domain list node %d truncated", i)
		}
		n := ListedNode{Type: protocol.NodeType(buf[0])}
		n.UUID = protocol.ReadUUID(buf[1:])
		buf = buf[17:]

		var err error
		if n.PublicAddress, buf, err = readString(buf); err != nil {
			return nil, fmt.Errorf("domain list node %d: %w", i, err)
		}
		if n.LocalAddress, buf, err = readString(buf); err != nil {
			return nil, fmt.Errorf("domain list node %d: %w", i, err)
		}
		if len(buf) < 2 {
			return nil, fmt.Errorf("domain list node %d truncated", i)
		}
		n.LocalID = binary.LittleEndian.Uint16(buf)
		buf = buf[2:]

		l.Nodes = append(l.Nodes, n)
	}
	return l, nil
}

// ConnectionDenied is the body of DomainConnectionDenied.
type ConnectionDenied struct {
	ReasonCode uint8
	Reason     string
}

// Encode serializes a denial body.
func (d *ConnectionDenied) Encode() []byte {
	return appendString([]byte{d.ReasonCode}, d.Reason)
}

// DecodeConnectionDenied parses a denial body.
func DecodeConnectionDenied(buf []byte) (*ConnectionDenied, error) {
	if len(buf) < 1 {
		return nil, fmt.Errorf("connection denied truncated")
	}
	reason, _, err := readString(buf[1:])
	if err != nil {
		return nil, fmt.Errorf("connection denied: %w", err)
	}
	return &ConnectionDenied{ReasonCode: buf[0], Reason: reason}, nil
}

// RemovedNode is the body of DomainServerRemovedNode.
type RemovedNode struct {
	UUID uuid.UUID
}

// Encode serializes a removed-node body.
func (r *RemovedNode) Encode() []byte {
	var id [16]byte
	protocol.PutUUID(id[:], r.UUID)
	return id[:]
}

// DecodeRemovedNode parses a removed-node body.
func DecodeRemovedNode(buf []byte) (*RemovedNode, error) {
	if len(buf) < 16 {
		return nil, fmt.Errorf("removed node truncated")
	}
	return &RemovedNode{UUID: protocol.ReadUUID(buf)}, nil
}

// Ping types distinguish which advertised address a probe targets.
const (
	PingLocal  uint8 = 1
	PingPublic uint8 = 2
)

// Ping is the body of Ping and PingReply; replies echo the original
// timestamp so round trips can be measured.
type Ping struct {
	PingType  uint8
	Timestamp uint64
}

// Encode serializes a ping body.
func (p *Ping) Encode() []byte {
	buf := make([]byte, 9)
	buf[0] = p.PingType
	binary.LittleEndian.PutUint64(buf[1:], p.Timestamp)
	return buf
}

// DecodePing parses a ping body.
func DecodePing(buf []byte) (*Ping, error) {
	if len(buf) < 9 {
		return nil, fmt.Errorf("ping truncated")
	}
	return &Ping{
		PingType:  buf[0],
		Timestamp: binary.LittleEndian.Uint64(buf[1:]),
	}, nil
}
