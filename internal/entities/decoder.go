package entities

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/protocol"
)

// EditPacket is the decoded form of one entity-edit body.
type EditPacket struct {
	EntityID   uuid.UUID
	LastEdited uint64
	Properties *EntityProperties
}

// DecodeEditPacket parses an entity-edit body produced by
// EncodeEditPacket, returning the decoded edit and the bytes consumed.
func DecodeEditPacket(buf []byte) (*EditPacket, int, error) {
	if len(buf) < 1+8+16 {
		return nil, 0, fmt.Errorf("entity edit: body too short: %d bytes", len(buf))
	}

	offset := 0
	if buf[offset] != 0 {
		return nil, 0, fmt.Errorf("entity edit: unexpected octcode 0x%02x", buf[offset])
	}
	offset++

	lastEdited := binary.LittleEndian.Uint64(buf[offset:])
	offset += 8

	entityID := protocol.ReadUUID(buf[offset:])
	offset += 16

	rawType, n, err := protocol.DecodeByteCountCoded(buf[offset:])
	if err != nil {
		return nil, 0, fmt.Errorf("entity edit: entity type: %w", err)
	}
	offset += n

	_, n, err = protocol.DecodeByteCountCoded(buf[offset:]) // update delta
	if err != nil {
		return nil, 0, fmt.Errorf("entity edit: update delta: %w", err)
	}
	offset += n

	flags, n, err := protocol.DecodePropertyFlags(buf[offset:])
	if err != nil {
		return nil, 0, fmt.Errorf("entity edit: property flags: %w", err)
	}
	offset += n

	props := &EntityProperties{EntityType: EntityType(rawType)}
	for _, c := range codecsForType(props.EntityType) {
		if !flags.GetHasProperty(c.flag) {
			continue
		}
		n, err := c.readFn(buf, offset, props)
		if err != nil {
			return nil, 0, fmt.Errorf("entity edit: property %d: %w", c.flag, err)
		}
		offset += n
	}

	return &EditPacket{
		EntityID:   entityID,
		LastEdited: lastEdited,
		Properties: props,
	}, offset, nil
}
