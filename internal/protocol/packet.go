// Package protocol defines the packet framing shared by the domain-join
// protocol and the entity wire format: the fixed header, node and packet
// type bytes, sequence numbers, and the bit-level primitives
// (PropertyFlags, ByteCountCoded, 128-bit integer I/O) the payload codecs
// build on.
package protocol

import (
	"github.com/google/uuid"
)

// Control bits occupying the two high bits of the leading uint16.
const (
	flagReliable uint16 = 0x8000
	flagMessage  uint16 = 0x4000
)

// MaxSequenceNumber is the largest 14-bit sequence number; the counter
// wraps back to 0 past it.
const MaxSequenceNumber = 0x3FFF

// HeaderSize is the fixed header size:
// SeqAndFlags(2) + Type(1) + Version(1) + SenderID(16).
const HeaderSize = 20

// Packet represents one datagram exchanged over a data channel.
type Packet struct {
	SequenceNumber uint16 // 14-bit, wraps at MaxSequenceNumber
	Reliable       bool   // delivery is acknowledged end to end
	Message        bool   // part of a multi-packet message
	Type           PacketType
	Version        uint8
	SenderID       uuid.UUID // zero until the domain assigns a session UUID
	Payload        []byte
}
