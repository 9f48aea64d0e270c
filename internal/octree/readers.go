package octree

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/protocol"
)

// Readers mirror the appenders. Each returns the decoded value and the
// bytes consumed, or an error when the buffer is exhausted mid-field.

var errShortBuffer = fmt.Errorf("octree: buffer too short")

func need(buf []byte, offset, n int) error {
	if offset+n > len(buf) {
		return errShortBuffer
	}
	return nil
}

// ReadBoolValue reads a one-byte bool.
func ReadBoolValue(buf []byte, offset int) (bool, int, error) {
	if err := need(buf, offset, 1); err != nil {
		return false, 0, err
	}
	return buf[offset] != 0, 1, nil
}

// ReadUint8Value reads a uint8.
func ReadUint8Value(buf []byte, offset int) (uint8, int, error) {
	if err := need(buf, offset, 1); err != nil {
		return 0, 0, err
	}
	return buf[offset], 1, nil
}

// ReadUint16Value reads a little-endian uint16.
func ReadUint16Value(buf []byte, offset int) (uint16, int, error) {
	if err := need(buf, offset, 2); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint16(buf[offset:]), 2, nil
}

// ReadUint32Value reads a little-endian uint32.
func ReadUint32Value(buf []byte, offset int) (uint32, int, error) {
	if err := need(buf, offset, 4); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint32(buf[offset:]), 4, nil
}

// ReadUint64Value reads a little-endian uint64.
func ReadUint64Value(buf []byte, offset int) (uint64, int, error) {
	if err := need(buf, offset, 8); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint64(buf[offset:]), 8, nil
}

// ReadFloat32Value reads a little-endian float32.
func ReadFloat32Value(buf []byte, offset int) (float32, int, error) {
	if err := need(buf, offset, 4); err != nil {
		return 0, 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:])), 4, nil
}

// ReadColorValue reads a three-byte RGB color.
func ReadColorValue(buf []byte, offset int) (Color, int, error) {
	if err := need(buf, offset, 3); err != nil {
		return Color{}, 0, err
	}
	return Color{R: buf[offset], G: buf[offset+1], B: buf[offset+2]}, 3, nil
}

// ReadVec2Value reads two float32s.
func ReadVec2Value(buf []byte, offset int) (Vec2, int, error) {
	if err := need(buf, offset, 8); err != nil {
		return Vec2{}, 0, err
	}
	return Vec2{
		X: math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(buf[offset+4:])),
	}, 8, nil
}

// ReadVec3Value reads three float32s.
func ReadVec3Value(buf []byte, offset int) (Vec3, int, error) {
	if err := need(buf, offset, 12); err != nil {
		return Vec3{}, 0, err
	}
	return readVec3(buf[offset:]), 12, nil
}

// ReadQuatValue reads an 8-byte packed quaternion.
func ReadQuatValue(buf []byte, offset int) (Quat, int, error) {
	if err := need(buf, offset, 8); err != nil {
		return Quat{}, 0, err
	}
	return UnpackOrientationQuat(binary.LittleEndian.Uint64(buf[offset:])), 8, nil
}

// ReadRectValue reads four float32s (x, y, w, h).
func ReadRectValue(buf []byte, offset int) (Rect, int, error) {
	if err := need(buf, offset, 16); err != nil {
		return Rect{}, 0, err
	}
	return Rect{
		X:      math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:])),
		Y:      math.Float32frombits(binary.LittleEndian.Uint32(buf[offset+4:])),
		Width:  math.Float32frombits(binary.LittleEndian.Uint32(buf[offset+8:])),
		Height: math.Float32frombits(binary.LittleEndian.Uint32(buf[offset+12:])),
	}, 16, nil
}

// ReadAACubeValue reads a corner Vec3 and a scale.
func ReadAACubeValue(buf []byte, offset int) (AACube, int, error) {
	if err := need(buf, offset, 16); err != nil {
		return AACube{}, 0, err
	}
	return AACube{
		Corner: readVec3(buf[offset:]),
		Scale:  math.Float32frombits(binary.LittleEndian.Uint32(buf[offset+12:])),
	}, 16, nil
}

// ReadStringValue reads a uint16-length-prefixed UTF-8 string.
func ReadStringValue(buf []byte, offset int) (string, int, error) {
	n, _, err := ReadUint16Value(buf, offset)
	if err != nil {
		return "", 0, err
	}
	if err := need(buf, offset+2, int(n)); err != nil {
		return "", 0, err
	}
	return string(buf[offset+2 : offset+2+int(n)]), 2 + int(n), nil
}

// ReadByteArrayValue reads a uint16-length-prefixed byte array.
func ReadByteArrayValue(buf []byte, offset int) ([]byte, int, error) {
	n, _, err := ReadUint16Value(buf, offset)
	if err != nil {
		return nil, 0, err
	}
	if err := need(buf, offset+2, int(n)); err != nil {
		return nil, 0, err
	}
	out := make([]byte, n)
	copy(out, buf[offset+2:])
	return out, 2 + int(n), nil
}

// ReadUUIDValue reads a length-prefixed UUID; length 0 decodes to the
// zero UUID.
func ReadUUIDValue(buf []byte, offset int) (uuid.UUID, int, error) {
	n, _, err := ReadUint16Value(buf, offset)
	if err != nil {
		return uuid.Nil, 0, err
	}
	switch n {
	case 0:
		return uuid.Nil, 2, nil
	case 16:
		if err := need(buf, offset+2, 16); err != nil {
			return uuid.Nil, 0, err
		}
		return protocol.ReadUUID(buf[offset+2:]), 18, nil
	default:
		return uuid.Nil, 0, fmt.Errorf("octree: UUID field has length %d", n)
	}
}

// ReadQuatArrayValue reads a uint16-count-prefixed packed-quaternion array.
func ReadQuatArrayValue(buf []byte, offset int) ([]Quat, int, error) {
	n, _, err := ReadUint16Value(buf, offset)
	if err != nil {
		return nil, 0, err
	}
	if err := need(buf, offset+2, 8*int(n)); err != nil {
		return nil, 0, err
	}
	out := make([]Quat, n)
	for i := range out {
		out[i] = UnpackOrientationQuat(binary.LittleEndian.Uint64(buf[offset+2+8*i:]))
	}
	return out, 2 + 8*int(n), nil
}

// ReadVec3ArrayValue reads a uint16-count-prefixed Vec3 array.
func ReadVec3ArrayValue(buf []byte, offset int) ([]Vec3, int, error) {
	n, _, err := ReadUint16Value(buf, offset)
	if err != nil {
		return nil, 0, err
	}
	if err := need(buf, offset+2, 12*int(n)); err != nil {
		return nil, 0, err
	}
	out := make([]Vec3, n)
	for i := range out {
		out[i] = readVec3(buf[offset+2+12*i:])
	}
	return out, 2 + 12*int(n), nil
}

// ReadUUIDArrayValue reads a uint16-count-prefixed UUID array.
func ReadUUIDArrayValue(buf []byte, offset int) ([]uuid.UUID, int, error) {
	n, _, err := ReadUint16Value(buf, offset)
	if err != nil {
		return nil, 0, err
	}
	if err := need(buf, offset+2, 16*int(n)); err != nil {
		return nil, 0, err
	}
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = protocol.ReadUUID(buf[offset+2+16*i:])
	}
	return out, 2 + 16*int(n), nil
}
