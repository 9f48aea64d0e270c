package entities

import (
	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/octree"
)

// fieldCodec binds one property code to its presence check, its typed
// appender and its reader. The per-type codec tables below are the single
// source of truth for which properties exist on the wire and in what
// order; both the encoder and the decoder walk them.
type fieldCodec struct {
	flag     int
	has      func(p *EntityProperties) bool
	appendFn func(buf []byte, offset int, p *EntityProperties, ctx *octree.PacketContext) int
	readFn   func(buf []byte, offset int, p *EntityProperties) (int, error)
}

// newField builds a fieldCodec from a peek/set accessor pair and the
// matching octree appender/reader.
func newField[T any](
	flag int,
	peek func(*EntityProperties) *T,
	set func(*EntityProperties, T),
	appendValue func([]byte, int, int, T, *octree.PacketContext) int,
	readValue func([]byte, int) (T, int, error),
) fieldCodec {
	return fieldCodec{
		flag: flag,
		has:  func(p *EntityProperties) bool { return peek(p) != nil },
		appendFn: func(buf []byte, offset int, p *EntityProperties, ctx *octree.PacketContext) int {
			return appendValue(buf, offset, flag, *peek(p), ctx)
		},
		readFn: func(buf []byte, offset int, p *EntityProperties) (int, error) {
			v, n, err := readValue(buf, offset)
			if err != nil {
				return 0, err
			}
			set(p, v)
			return n, nil
		},
	}
}

// Group accessors allocate the group record on first write.

func ensureGrab(p *EntityProperties) *GrabProperties {
	if p.Grab == nil {
		p.Grab = &GrabProperties{}
	}
	return p.Grab
}

func ensurePulse(p *EntityProperties) *PulseProperties {
	if p.Pulse == nil {
		p.Pulse = &PulseProperties{}
	}
	return p.Pulse
}

func ensureAnimation(p *EntityProperties) *AnimationProperties {
	if p.Animation == nil {
		p.Animation = &AnimationProperties{}
	}
	return p.Animation
}

func ensureKeyLight(p *EntityProperties) *KeyLightProperties {
	if p.KeyLight == nil {
		p.KeyLight = &KeyLightProperties{}
	}
	return p.KeyLight
}

func ensureAmbientLight(p *EntityProperties) *AmbientLightProperties {
	if p.AmbientLight == nil {
		p.AmbientLight = &AmbientLightProperties{}
	}
	return p.AmbientLight
}

func ensureSkybox(p *EntityProperties) *SkyboxProperties {
	if p.Skybox == nil {
		p.Skybox = &SkyboxProperties{}
	}
	return p.Skybox
}

func ensureHaze(p *EntityProperties) *HazeProperties {
	if p.Haze == nil {
		p.Haze = &HazeProperties{}
	}
	return p.Haze
}

func ensureBloom(p *EntityProperties) *BloomProperties {
	if p.Bloom == nil {
		p.Bloom = &BloomProperties{}
	}
	return p.Bloom
}

func ensureToneMapping(p *EntityProperties) *ToneMappingProperties {
	if p.ToneMapping == nil {
		p.ToneMapping = &ToneMappingProperties{}
	}
	return p.ToneMapping
}

func ensureRing(p *EntityProperties) *RingProperties {
	if p.Ring == nil {
		p.Ring = &RingProperties{}
	}
	return p.Ring
}

// commonCodecs lists the properties shared by every entity type, in flag
// order. The per-type blocks below follow immediately after on the wire.
var commonCodecs = []fieldCodec{
	newField(PropParentID,
		func(p *EntityProperties) *uuid.UUID { return p.ParentID },
		func(p *EntityProperties, v uuid.UUID) { p.ParentID = &v },
		octree.AppendUUIDValue, octree.ReadUUIDValue),
	newField(PropParentJointIndex,
		func(p *EntityProperties) *uint16 { return p.ParentJointIndex },
		func(p *EntityProperties, v uint16) { p.ParentJointIndex = &v },
		octree.AppendUint16Value, octree.ReadUint16Value),
	newField(PropVisible,
		func(p *EntityProperties) *bool { return p.Visible },
		func(p *EntityProperties, v bool) { p.Visible = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropName,
		func(p *EntityProperties) *string { return p.Name },
		func(p *EntityProperties, v string) { p.Name = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropLocked,
		func(p *EntityProperties) *bool { return p.Locked },
		func(p *EntityProperties, v bool) { p.Locked = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropUserData,
		func(p *EntityProperties) *string { return p.UserData },
		func(p *EntityProperties, v string) { p.UserData = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropPrivateUserData,
		func(p *EntityProperties) *string { return p.PrivateUserData },
		func(p *EntityProperties, v string) { p.PrivateUserData = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropHref,
		func(p *EntityProperties) *string { return p.Href },
		func(p *EntityProperties, v string) { p.Href = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropDescription,
		func(p *EntityProperties) *string { return p.Description },
		func(p *EntityProperties, v string) { p.Description = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropPosition,
		func(p *EntityProperties) *octree.Vec3 { return p.Position },
		func(p *EntityProperties, v octree.Vec3) { p.Position = &v },
		octree.AppendVec3Value, octree.ReadVec3Value),
	newField(PropDimensions,
		func(p *EntityProperties) *octree.Vec3 { return p.Dimensions },
		func(p *EntityProperties, v octree.Vec3) { p.Dimensions = &v },
		octree.AppendVec3Value, octree.ReadVec3Value),
	newField(PropRotation,
		func(p *EntityProperties) *octree.Quat { return p.Rotation },
		func(p *EntityProperties, v octree.Quat) { p.Rotation = &v },
		octree.AppendQuatValue, octree.ReadQuatValue),
	newField(PropRegistrationPoint,
		func(p *EntityProperties) *octree.Vec3 { return p.RegistrationPoint },
		func(p *EntityProperties, v octree.Vec3) { p.RegistrationPoint = &v },
		octree.AppendVec3Value, octree.ReadVec3Value),
	newField(PropCreated,
		func(p *EntityProperties) *uint64 { return p.Created },
		func(p *EntityProperties, v uint64) { p.Created = &v },
		octree.AppendUint64Value, octree.ReadUint64Value),
	newField(PropLastEditedBy,
		func(p *EntityProperties) *uuid.UUID { return p.LastEditedBy },
		func(p *EntityProperties, v uuid.UUID) { p.LastEditedBy = &v },
		octree.AppendUUIDValue, octree.ReadUUIDValue),
	newField(PropQueryAACube,
		func(p *EntityProperties) *octree.AACube { return p.QueryAACube },
		func(p *EntityProperties, v octree.AACube) { p.QueryAACube = &v },
		octree.AppendAACubeValue, octree.ReadAACubeValue),
	newField(PropCanCastShadow,
		func(p *EntityProperties) *bool { return p.CanCastShadow },
		func(p *EntityProperties, v bool) { p.CanCastShadow = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropRenderLayer,
		func(p *EntityProperties) *uint32 { return p.RenderLayer },
		func(p *EntityProperties, v uint32) { p.RenderLayer = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
	newField(PropPrimitiveMode,
		func(p *EntityProperties) *uint32 { return p.PrimitiveMode },
		func(p *EntityProperties, v uint32) { p.PrimitiveMode = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
	newField(PropIgnorePickIntersection,
		func(p *EntityProperties) *bool { return p.IgnorePickIntersection },
		func(p *EntityProperties, v bool) { p.IgnorePickIntersection = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropRenderWithZones,
		func(p *EntityProperties) *[]uuid.UUID { return p.RenderWithZones },
		func(p *EntityProperties, v []uuid.UUID) { p.RenderWithZones = &v },
		octree.AppendUUIDArrayValue, octree.ReadUUIDArrayValue),
	newField(PropBillboardMode,
		func(p *EntityProperties) *uint32 { return p.BillboardMode },
		func(p *EntityProperties, v uint32) { p.BillboardMode = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
	newField(PropGrabGrabbable,
		func(p *EntityProperties) *bool {
			if p.Grab == nil {
				return nil
			}
			return p.Grab.Grabbable
		},
		func(p *EntityProperties, v bool) { ensureGrab(p).Grabbable = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropGrabKinematic,
		func(p *EntityProperties) *bool {
			if p.Grab == nil {
				return nil
			}
			return p.Grab.Kinematic
		},
		func(p *EntityProperties, v bool) { ensureGrab(p).Kinematic = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropGrabFollowsController,
		func(p *EntityProperties) *bool {
			if p.Grab == nil {
				return nil
			}
			return p.Grab.FollowsController
		},
		func(p *EntityProperties, v bool) { ensureGrab(p).FollowsController = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropGrabTriggerable,
		func(p *EntityProperties) *bool {
			if p.Grab == nil {
				return nil
			}
			return p.Grab.Triggerable
		},
		func(p *EntityProperties, v bool) { ensureGrab(p).Triggerable = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropGrabEquippable,
		func(p *EntityProperties) *bool {
			if p.Grab == nil {
				return nil
			}
			return p.Grab.Equippable
		},
		func(p *EntityProperties, v bool) { ensureGrab(p).Equippable = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropGrabDelegateToParent,
		func(p *EntityProperties) *bool {
			if p.Grab == nil {
				return nil
			}
			return p.Grab.DelegateToParent
		},
		func(p *EntityProperties, v bool) { ensureGrab(p).DelegateToParent = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropDensity,
		func(p *EntityProperties) *float32 { return p.Density },
		func(p *EntityProperties, v float32) { p.Density = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropVelocity,
		func(p *EntityProperties) *octree.Vec3 { return p.Velocity },
		func(p *EntityProperties, v octree.Vec3) { p.Velocity = &v },
		octree.AppendVec3Value, octree.ReadVec3Value),
	newField(PropAngularVelocity,
		func(p *EntityProperties) *octree.Vec3 { return p.AngularVelocity },
		func(p *EntityProperties, v octree.Vec3) { p.AngularVelocity = &v },
		octree.AppendVec3Value, octree.ReadVec3Value),
	newField(PropGravity,
		func(p *EntityProperties) *octree.Vec3 { return p.Gravity },
		func(p *EntityProperties, v octree.Vec3) { p.Gravity = &v },
		octree.AppendVec3Value, octree.ReadVec3Value),
	newField(PropDamping,
		func(p *EntityProperties) *float32 { return p.Damping },
		func(p *EntityProperties, v float32) { p.Damping = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropAngularDamping,
		func(p *EntityProperties) *float32 { return p.AngularDamping },
		func(p *EntityProperties, v float32) { p.AngularDamping = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropRestitution,
		func(p *EntityProperties) *float32 { return p.Restitution },
		func(p *EntityProperties, v float32) { p.Restitution = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropFriction,
		func(p *EntityProperties) *float32 { return p.Friction },
		func(p *EntityProperties, v float32) { p.Friction = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropLifetime,
		func(p *EntityProperties) *float32 { return p.Lifetime },
		func(p *EntityProperties, v float32) { p.Lifetime = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropCollisionless,
		func(p *EntityProperties) *bool { return p.Collisionless },
		func(p *EntityProperties, v bool) { p.Collisionless = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropCollisionMask,
		func(p *EntityProperties) *uint16 { return p.CollisionMask },
		func(p *EntityProperties, v uint16) { p.CollisionMask = &v },
		octree.AppendUint16Value, octree.ReadUint16Value),
	newField(PropDynamic,
		func(p *EntityProperties) *bool { return p.Dynamic },
		func(p *EntityProperties, v bool) { p.Dynamic = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropCollisionSoundURL,
		func(p *EntityProperties) *string { return p.CollisionSoundURL },
		func(p *EntityProperties, v string) { p.CollisionSoundURL = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropActionData,
		func(p *EntityProperties) *[]byte { return p.ActionData },
		func(p *EntityProperties, v []byte) { p.ActionData = &v },
		octree.AppendByteArrayValue, octree.ReadByteArrayValue),
	newField(PropScript,
		func(p *EntityProperties) *string { return p.Script },
		func(p *EntityProperties, v string) { p.Script = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropScriptTimestamp,
		func(p *EntityProperties) *uint64 { return p.ScriptTimestamp },
		func(p *EntityProperties, v uint64) { p.ScriptTimestamp = &v },
		octree.AppendUint64Value, octree.ReadUint64Value),
	newField(PropServerScripts,
		func(p *EntityProperties) *string { return p.ServerScripts },
		func(p *EntityProperties, v string) { p.ServerScripts = &v },
		octree.AppendStringValue, octree.ReadStringValue),
}
