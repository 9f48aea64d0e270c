package protocol

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// 128-bit integers are read and written as two 64-bit halves. UUIDs are the
// only multi-word integer path in the codec, and they always travel
// big-endian regardless of the little-endian scalar discipline.

// Put128 writes the 128-bit value (hi, lo) into buf[0:16] in the given byte
// order. Big-endian places hi first; little-endian places lo first, each
// half in the matching order.
func Put128(buf []byte, hi, lo uint64, order binary.ByteOrder) {
	_ = buf[15]
	if order == binary.ByteOrder(binary.BigEndian) {
		binary.BigEndian.PutUint64(buf[0:8], hi)
		binary.BigEndian.PutUint64(buf[8:16], lo)
		return
	}
	binary.LittleEndian.PutUint64(buf[0:8], lo)
	binary.LittleEndian.PutUint64(buf[8:16], hi)
}

// Read128 reads a 128-bit value from buf[0:16] written by Put128 with the
// same byte order.
func Read128(buf []byte, order binary.ByteOrder) (hi, lo uint64) {
	_ = buf[15]
	if order == binary.ByteOrder(binary.BigEndian) {
		return binary.BigEndian.Uint64(buf[0:8]), binary.BigEndian.Uint64(buf[8:16])
	}
	return binary.LittleEndian.Uint64(buf[8:16]), binary.LittleEndian.Uint64(buf[0:8])
}

// PutUUID writes u into buf[0:16] in RFC 4122 byte order (big-endian).
func PutUUID(buf []byte, u uuid.UUID) {
	hi := binary.BigEndian.Uint64(u[0:8])
	lo := binary.BigEndian.Uint64(u[8:16])
	Put128(buf, hi, lo, binary.BigEndian)
}

// ReadUUID reads a UUID from buf[0:16] written by PutUUID.
func ReadUUID(buf []byte) uuid.UUID {
	hi, lo := Read128(buf, binary.BigEndian)
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[0:8], hi)
	binary.BigEndian.PutUint64(u[8:16], lo)
	return u
}
