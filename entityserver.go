package vista

import (
	"time"

	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/entities"
	"github.com/vistaverse/vista/internal/octree"
	"github.com/vistaverse/vista/internal/protocol"
	"github.com/vistaverse/vista/internal/util"
)

// Entity value and property types re-exported for SDK consumers.
type (
	EntityType       = entities.EntityType
	EntityProperties = entities.EntityProperties
	EntityEdit       = entities.EditPacket

	GrabProperties         = entities.GrabProperties
	PulseProperties        = entities.PulseProperties
	AnimationProperties    = entities.AnimationProperties
	KeyLightProperties     = entities.KeyLightProperties
	AmbientLightProperties = entities.AmbientLightProperties
	SkyboxProperties       = entities.SkyboxProperties
	HazeProperties         = entities.HazeProperties
	BloomProperties        = entities.BloomProperties
	ToneMappingProperties  = entities.ToneMappingProperties
	RingProperties         = entities.RingProperties

	Vec2   = octree.Vec2
	Vec3   = octree.Vec3
	Color  = octree.Color
	Quat   = octree.Quat
	Rect   = octree.Rect
	AACube = octree.AACube
)

// Entity type constants.
const (
	EntityTypeUnknown        = entities.EntityTypeUnknown
	EntityTypeBox            = entities.EntityTypeBox
	EntityTypeSphere         = entities.EntityTypeSphere
	EntityTypeShape          = entities.EntityTypeShape
	EntityTypeModel          = entities.EntityTypeModel
	EntityTypeText           = entities.EntityTypeText
	EntityTypeImage          = entities.EntityTypeImage
	EntityTypeWeb            = entities.EntityTypeWeb
	EntityTypeParticleEffect = entities.EntityTypeParticleEffect
	EntityTypePolyLine       = entities.EntityTypePolyLine
	EntityTypePolyVox        = entities.EntityTypePolyVox
	EntityTypeGrid           = entities.EntityTypeGrid
	EntityTypeGizmo          = entities.EntityTypeGizmo
	EntityTypeLight          = entities.EntityTypeLight
	EntityTypeZone           = entities.EntityTypeZone
	EntityTypeMaterial       = entities.EntityTypeMaterial
)

// EntityServer is the SDK handle for the entity server slot, adding the
// entity CRUD surface on top of the assignment-client state machine.
type EntityServer struct {
	*assignmentClient
	maxPacketSize int
}

// NewEntityServer attaches an entity-server handle to a context.
func NewEntityServer(contextID int) *EntityServer {
	client := newAssignmentClient(contextID, protocol.NodeTypeEntityServer)
	return &EntityServer{
		assignmentClient: client,
		maxPacketSize:    client.dc.maxPacketSize,
	}
}

// EditEntity serializes the supplied properties into an EntityEdit
// packet and sends it to the entity server. Reports whether a packet was
// sent; a PARTIAL fit still sends what fit and logs what did not.
func (e *EntityServer) EditEntity(id uuid.UUID, props *EntityProperties) bool {
	buf := make([]byte, e.maxPacketSize-protocol.HeaderSize)
	lastEdited := uint64(time.Now().UnixMicro())

	n, state, didntFit, err := entities.EncodeEditPacket(buf, id, lastEdited, props)
	if err != nil {
		util.LogError("entity server: edit of %s failed: %v", id, err)
		return false
	}
	switch state {
	case octree.None:
		util.LogWarning("entity server: no property of %s fit in one packet", id)
		return false
	case octree.Partial:
		util.LogWarning("entity server: edit of %s truncated at property %d; %d bytes sent",
			id, didntFit.MaxFlag(), n)
	}

	return e.dc.nodes.SendToNode(protocol.NodeTypeEntityServer,
		protocol.PacketTypeEntityEdit, buf[:n])
}

// OnEntityData registers the callback for entity data arriving from the
// entity server. The callback runs on the socket's delivery goroutine.
func (e *EntityServer) OnEntityData(fn func(*EntityEdit)) {
	e.dc.nodes.Receiver().RegisterListener(protocol.PacketTypeEntityData,
		func(_ protocol.NodeType, pkt *protocol.Packet) {
			edit, _, err := entities.DecodeEditPacket(pkt.Payload)
			if err != nil {
				util.LogWarning("entity server: bad entity data: %v", err)
				return
			}
			fn(edit)
		})
}
