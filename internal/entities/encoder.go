package entities

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/octree"
	"github.com/vistaverse/vista/internal/protocol"
)

// Entity-edit body layout:
//
//	octcode(1) | lastEdited u64 LE | entityID 16 BE |
//	entityType ByteCountCoded | updateDelta ByteCountCoded |
//	property flags | typed field stream in ascending flag order
//
// The flag block is written at the requested set's full length up front,
// so bits for properties that later fail to fit can be cleared in place
// without moving the field stream.

// GetChangedProperties derives the requested property set from the
// supplied (non-nil) fields of props, walking group records too.
func GetChangedProperties(props *EntityProperties) *protocol.PropertyFlags {
	flags := &protocol.PropertyFlags{}
	for _, c := range codecsForType(props.EntityType) {
		if c.has(props) {
			flags.SetHasProperty(c.flag, true)
		}
	}
	return flags
}

// EncodeEditPacket serializes an entity edit into buf. It returns the
// bytes written, the append state, and the set of requested properties
// that did not fit:
//
//   - Completed: every requested property with a valid value was written.
//   - Partial: some fit, some did not; the wire flag block reflects only
//     what was actually written.
//   - None: no property fit. The returned length covers only the header
//     and flag block — the caller should abandon the packet.
//
// A property whose value fails validation is logged by its appender,
// dropped from the wire flags, and not counted as unfit.
func EncodeEditPacket(buf []byte, entityID uuid.UUID, lastEdited uint64, props *EntityProperties) (int, octree.AppendState, *protocol.PropertyFlags, error) {
	requested := GetChangedProperties(props)
	didntFit := &protocol.PropertyFlags{}

	offset := 0

	// Octcode: entity edits always address the octree root.
	if len(buf) < 1+8+16 {
		return 0, octree.None, didntFit, fmt.Errorf("entity edit: buffer too small for header")
	}
	buf[offset] = 0
	offset++

	binary.LittleEndian.PutUint64(buf[offset:], lastEdited)
	offset += 8

	protocol.PutUUID(buf[offset:], entityID)
	offset += 16

	n := protocol.EncodeByteCountCoded(buf[offset:], uint64(props.EntityType))
	if n == 0 {
		return 0, octree.None, didntFit, fmt.Errorf("entity edit: buffer too small for entity type")
	}
	offset += n

	n = protocol.EncodeByteCountCoded(buf[offset:], 0) // update delta
	if n == 0 {
		return 0, octree.None, didntFit, fmt.Errorf("entity edit: buffer too small for update delta")
	}
	offset += n

	// Reserve the flag block at the requested set's full length.
	flagsOffset := offset
	flagsSize := requested.EncodedSize()
	if requested.EncodeWithSize(buf[flagsOffset:], flagsSize) == 0 {
		return 0, octree.None, didntFit, fmt.Errorf("entity edit: buffer too small for property flags")
	}
	offset += flagsSize
	checkpoint := offset

	wireFlags := requested.Clone()
	ctx := octree.NewPacketContext(requested)

	for _, c := range codecsForType(props.EntityType) {
		if !requested.GetHasProperty(c.flag) {
			continue
		}

		ctx.AppendState = octree.Completed
		n := c.appendFn(buf, offset, props, ctx)
		if n > 0 {
			offset += n
			continue
		}

		// Not written: the wire image must not advertise the flag.
		wireFlags.SetHasProperty(c.flag, false)
		if ctx.AppendState == octree.Partial {
			didntFit.SetHasProperty(c.flag, true)
		}
	}

	state := octree.Completed
	switch {
	case ctx.PropertyCount == 0 && !requested.IsEmpty():
		state = octree.None
	case !didntFit.IsEmpty():
		state = octree.Partial
	}
	ctx.AppendState = state

	if !wireFlags.Equal(requested) {
		wireFlags.EncodeWithSize(buf[flagsOffset:], flagsSize)
	}

	if state == octree.None {
		return checkpoint, state, didntFit, nil
	}
	return offset, state, didntFit, nil
}
