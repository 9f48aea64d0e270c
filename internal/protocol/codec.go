package protocol

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// Encode serializes a Packet into a byte slice for data-channel transmission.
func Encode(pkt *Packet) []byte {
	size := HeaderSize + len(pkt.Payload)
	buf := make([]byte, size)

	seqAndFlags := pkt.SequenceNumber & MaxSequenceNumber
	if pkt.Reliable {
		seqAndFlags |= flagReliable
	}
	if pkt.Message {
		seqAndFlags |= flagMessage
	}
	binary.LittleEndian.PutUint16(buf[0:2], seqAndFlags)
	buf[2] = byte(pkt.Type)
	buf[3] = pkt.Version
	PutUUID(buf[4:20], pkt.SenderID)

	if len(pkt.Payload) > 0 {
		copy(buf[HeaderSize:], pkt.Payload)
	}
	return buf
}

// Decode deserializes a byte slice into a Packet.
func Decode(data []byte) (*Packet, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("packet too short: %d bytes (need at least %d)", len(data), HeaderSize)
	}

	seqAndFlags := binary.LittleEndian.Uint16(data[0:2])
	pkt := &Packet{
		SequenceNumber: seqAndFlags & MaxSequenceNumber,
		Reliable:       seqAndFlags&flagReliable != 0,
		Message:        seqAndFlags&flagMessage != 0,
		Type:           PacketType(data[2]),
		Version:        data[3],
		SenderID:       ReadUUID(data[4:20]),
	}
	if len(data) > HeaderSize {
		pkt.Payload = make([]byte, len(data)-HeaderSize)
		copy(pkt.Payload, data[HeaderSize:])
	}
	return pkt, nil
}

// WriteVerificationHash would append the MD5 verification hash used on
// authenticated connections. The WebRTC control plane does not carry it.
func WriteVerificationHash(buf []byte, connectionSecret uuid.UUID) error {
	return fmt.Errorf("packet verification not implemented for data-channel transport")
}

// VerifyHash would check a received packet's verification hash.
// See WriteVerificationHash.
func VerifyHash(pkt *Packet, connectionSecret uuid.UUID) error {
	return fmt.Errorf("packet verification not implemented for data-channel transport")
}
