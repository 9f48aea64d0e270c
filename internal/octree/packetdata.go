package octree

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/protocol"
	"github.com/vistaverse/vista/internal/util"
)

// AppendState summarizes one serialization attempt into a bounded buffer.
type AppendState int

const (
	// Completed: every requested property with a valid value was written.
	Completed AppendState = iota
	// Partial: at least one property was written and at least one did not fit.
	Partial
	// None: no property fit; the caller should abandon the packet.
	None
)

// String returns the append state name for logs.
func (s AppendState) String() string {
	switch s {
	case Completed:
		return "COMPLETED"
	case Partial:
		return "PARTIAL"
	case None:
		return "NONE"
	default:
		return "Unknown"
	}
}

// MaxArrayLength is the largest element count an array field can carry;
// array length fields are uint16 on the wire.
const MaxArrayLength = 65535

// PacketContext is the scratch state threaded through the appenders while
// serializing one packet. PropertiesToWrite and PropertiesWritten stay
// disjoint throughout an encode.
type PacketContext struct {
	PropertiesToWrite *protocol.PropertyFlags
	PropertiesWritten *protocol.PropertyFlags
	PropertyCount     uint32
	AppendState       AppendState
}

// NewPacketContext creates a context for one encode over the given
// requested property set.
func NewPacketContext(requested *protocol.PropertyFlags) *PacketContext {
	return &PacketContext{
		PropertiesToWrite: requested.Clone(),
		PropertiesWritten: &protocol.PropertyFlags{},
		AppendState:       Completed,
	}
}

// markWritten records a successfully appended property.
func (ctx *PacketContext) markWritten(flag int) {
	ctx.PropertiesToWrite.SetHasProperty(flag, false)
	ctx.PropertiesWritten.SetHasProperty(flag, true)
	ctx.PropertyCount++
}

// overflow records that a property did not fit.
func (ctx *PacketContext) overflow() int {
	ctx.AppendState = Partial
	return 0
}

// Every appender obeys the same contract: validate the value (log and
// return 0 without touching ctx when invalid); return 0 after setting
// ctx.AppendState to Partial when the serialized size does not fit at
// offset; otherwise write, mark the flag written, and return the size.

// AppendBoolValue appends a bool as one byte.
func AppendBoolValue(buf []byte, offset int, flag int, value bool, ctx *PacketContext) int {
	if offset+1 > len(buf) {
		return ctx.overflow()
	}
	buf[offset] = 0
	if value {
		buf[offset] = 1
	}
	ctx.markWritten(flag)
	return 1
}

// AppendUint8Value appends a uint8.
func AppendUint8Value(buf []byte, offset int, flag int, value uint8, ctx *PacketContext) int {
	if offset+1 > len(buf) {
		return ctx.overflow()
	}
	buf[offset] = value
	ctx.markWritten(flag)
	return 1
}

// AppendUint16Value appends a uint16, little-endian.
func AppendUint16Value(buf []byte, offset int, flag int, value uint16, ctx *PacketContext) int {
	if offset+2 > len(buf) {
		return ctx.overflow()
	}
	binary.LittleEndian.PutUint16(buf[offset:], value)
	ctx.markWritten(flag)
	return 2
}

// AppendUint32Value appends a uint32, little-endian.
func AppendUint32Value(buf []byte, offset int, flag int, value uint32, ctx *PacketContext) int {
	if offset+4 > len(buf) {
		return ctx.overflow()
	}
	binary.LittleEndian.PutUint32(buf[offset:], value)
	ctx.markWritten(flag)
	return 4
}

// AppendUint64Value appends a uint64, little-endian.
func AppendUint64Value(buf []byte, offset int, flag int, value uint64, ctx *PacketContext) int {
	if offset+8 > len(buf) {
		return ctx.overflow()
	}
	binary.LittleEndian.PutUint64(buf[offset:], value)
	ctx.markWritten(flag)
	return 8
}

// MaxFloat32Magnitude bounds every float field; NaN and infinities are
// rejected before they reach the wire.
const MaxFloat32Magnitude = 3.4028235e38

func validFloat(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) <= MaxFloat32Magnitude
}

// AppendFloat32Value appends a float32, little-endian.
func AppendFloat32Value(buf []byte, offset int, flag int, value float32, ctx *PacketContext) int {
	if !validFloat(value) {
		util.LogError("Cannot write invalid float value")
		return 0
	}
	if offset+4 > len(buf) {
		return ctx.overflow()
	}
	binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(value))
	ctx.markWritten(flag)
	return 4
}

// AppendColorValue appends an RGB color as three bytes.
func AppendColorValue(buf []byte, offset int, flag int, value Color, ctx *PacketContext) int {
	if offset+3 > len(buf) {
		return ctx.overflow()
	}
	buf[offset] = value.R
	buf[offset+1] = value.G
	buf[offset+2] = value.B
	ctx.markWritten(flag)
	return 3
}

// AppendVec2Value appends a Vec2 as two float32s.
func AppendVec2Value(buf []byte, offset int, flag int, value Vec2, ctx *PacketContext) int {
	if !validFloat(value.X) || !validFloat(value.Y) {
		util.LogError("Cannot write invalid vec2 value")
		return 0
	}
	if offset+8 > len(buf) {
		return ctx.overflow()
	}
	binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(value.X))
	binary.LittleEndian.PutUint32(buf[offset+4:], math.Float32bits(value.Y))
	ctx.markWritten(flag)
	return 8
}

// AppendVec3Value appends a Vec3 as three float32s.
func AppendVec3Value(buf []byte, offset int, flag int, value Vec3, ctx *PacketContext) int {
	if !validFloat(value.X) || !validFloat(value.Y) || !validFloat(value.Z) {
		util.LogError("Cannot write invalid vec3 value")
		return 0
	}
	if offset+12 > len(buf) {
		return ctx.overflow()
	}
	putVec3(buf[offset:], value)
	ctx.markWritten(flag)
	return 12
}

func putVec3(buf []byte, v Vec3) {
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(v.Z))
}

func readVec3(buf []byte) Vec3 {
	return Vec3{
		X: math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])),
	}
}

// AppendQuatValue appends a quaternion in its 8-byte packed form.
func AppendQuatValue(buf []byte, offset int, flag int, value Quat, ctx *PacketContext) int {
	if !validFloat(value.X) || !validFloat(value.Y) || !validFloat(value.Z) || !validFloat(value.W) {
		util.LogError("Cannot write invalid quat value")
		return 0
	}
	if offset+8 > len(buf) {
		return ctx.overflow()
	}
	binary.LittleEndian.PutUint64(buf[offset:], PackOrientationQuat(value))
	ctx.markWritten(flag)
	return 8
}

// AppendRectValue appends a rectangle as four float32s (x, y, w, h).
func AppendRectValue(buf []byte, offset int, flag int, value Rect, ctx *PacketContext) int {
	if !validFloat(value.X) || !validFloat(value.Y) ||
		!validFloat(value.Width) || !validFloat(value.Height) {
		util.LogError("Cannot write invalid rect value")
		return 0
	}
	if offset+16 > len(buf) {
		return ctx.overflow()
	}
	binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(value.X))
	binary.LittleEndian.PutUint32(buf[offset+4:], math.Float32bits(value.Y))
	binary.LittleEndian.PutUint32(buf[offset+8:], math.Float32bits(value.Width))
	binary.LittleEndian.PutUint32(buf[offset+12:], math.Float32bits(value.Height))
	ctx.markWritten(flag)
	return 16
}

// AppendAACubeValue appends an axis-aligned cube as corner + scale.
// A negative scale is rejected.
func AppendAACubeValue(buf []byte, offset int, flag int, value AACube, ctx *PacketContext) int {
	if !validFloat(value.Corner.X) || !validFloat(value.Corner.Y) ||
		!validFloat(value.Corner.Z) || !validFloat(value.Scale) || value.Scale < 0 {
		util.LogError("Cannot write invalid AACube value")
		return 0
	}
	if offset+16 > len(buf) {
		return ctx.overflow()
	}
	putVec3(buf[offset:], value.Corner)
	binary.LittleEndian.PutUint32(buf[offset+12:], math.Float32bits(value.Scale))
	ctx.markWritten(flag)
	return 16
}

// AppendStringValue appends a UTF-8 string with a uint16 length prefix.
func AppendStringValue(buf []byte, offset int, flag int, value string, ctx *PacketContext) int {
	if len(value) > MaxArrayLength || !utf8.ValidString(value) {
		util.LogError("Cannot write invalid string value")
		return 0
	}
	size := 2 + len(value)
	if offset+size > len(buf) {
		return ctx.overflow()
	}
	binary.LittleEndian.PutUint16(buf[offset:], uint16(len(value)))
	copy(buf[offset+2:], value)
	ctx.markWritten(flag)
	return size
}

// AppendByteArrayValue appends raw bytes with a uint16 length prefix.
func AppendByteArrayValue(buf []byte, offset int, flag int, value []byte, ctx *PacketContext) int {
	if len(value) > MaxArrayLength {
		util.LogError("Cannot write invalid byte array value")
		return 0
	}
	size := 2 + len(value)
	if offset+size > len(buf) {
		return ctx.overflow()
	}
	binary.LittleEndian.PutUint16(buf[offset:], uint16(len(value)))
	copy(buf[offset+2:], value)
	ctx.markWritten(flag)
	return size
}

// AppendUUIDValue appends a UUID. The zero UUID encodes as a bare zero
// length; any other value as a 16-byte big-endian body.
func AppendUUIDValue(buf []byte, offset int, flag int, value uuid.UUID, ctx *PacketContext) int {
	size := 2
	if value != uuid.Nil {
		size = 2 + 16
	}
	if offset+size > len(buf) {
		return ctx.overflow()
	}
	if value == uuid.Nil {
		binary.LittleEndian.PutUint16(buf[offset:], 0)
	} else {
		binary.LittleEndian.PutUint16(buf[offset:], 16)
		protocol.PutUUID(buf[offset+2:], value)
	}
	ctx.markWritten(flag)
	return size
}

// AppendQuatArrayValue appends a packed-quaternion array with a uint16
// element count prefix.
func AppendQuatArrayValue(buf []byte, offset int, flag int, value []Quat, ctx *PacketContext) int {
	if len(value) > MaxArrayLength {
		util.LogError("Cannot write invalid quat array value")
		return 0
	}
	for _, q := range value {
		if !validFloat(q.X) || !validFloat(q.Y) || !validFloat(q.Z) || !validFloat(q.W) {
			util.LogError("Cannot write invalid quat array value")
			return 0
		}
	}
	size := 2 + 8*len(value)
	if offset+size > len(buf) {
		return ctx.overflow()
	}
	binary.LittleEndian.PutUint16(buf[offset:], uint16(len(value)))
	for i, q := range value {
		binary.LittleEndian.PutUint64(buf[offset+2+8*i:], PackOrientationQuat(q))
	}
	ctx.markWritten(flag)
	return size
}

// AppendVec3ArrayValue appends a Vec3 array with a uint16 element count prefix.
func AppendVec3ArrayValue(buf []byte, offset int, flag int, value []Vec3, ctx *PacketContext) int {
	if len(value) > MaxArrayLength {
		util.LogError("Cannot write invalid vec3 array value")
		return 0
	}
	for _, v := range value {
		if !validFloat(v.X) || !validFloat(v.Y) || !validFloat(v.Z) {
			util.LogError("Cannot write invalid vec3 array value")
			return 0
		}
	}
	size := 2 + 12*len(value)
	if offset+size > len(buf) {
		return ctx.overflow()
	}
	binary.LittleEndian.PutUint16(buf[offset:], uint16(len(value)))
	for i, v := range value {
		putVec3(buf[offset+2+12*i:], v)
	}
	ctx.markWritten(flag)
	return size
}

// AppendUUIDArrayValue appends a UUID array with a uint16 element count
// prefix; every element is written in full, zero or not.
func AppendUUIDArrayValue(buf []byte, offset int, flag int, value []uuid.UUID, ctx *PacketContext) int {
	if len(value) > MaxArrayLength {
		util.LogError("Cannot write invalid UUID array value")
		return 0
	}
	size := 2 + 16*len(value)
	if offset+size > len(buf) {
		return ctx.overflow()
	}
	binary.LittleEndian.PutUint16(buf[offset:], uint16(len(value)))
	for i, u := range value {
		protocol.PutUUID(buf[offset+2+16*i:], u)
	}
	ctx.markWritten(flag)
	return size
}
