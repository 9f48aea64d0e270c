package entities

import (
	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/octree"
)

// EntityProperties is the candidate property bag for one entity. Every
// field is optional: nil means "not supplied", and only supplied fields
// are flagged and serialized. Group sub-records mirror the nested
// property groups of the wire protocol.
type EntityProperties struct {
	EntityType EntityType

	// Core
	ParentID               *uuid.UUID
	ParentJointIndex       *uint16
	Visible                *bool
	Name                   *string
	Locked                 *bool
	UserData               *string
	PrivateUserData        *string
	Href                   *string
	Description            *string
	Position               *octree.Vec3
	Dimensions             *octree.Vec3
	Rotation               *octree.Quat
	RegistrationPoint      *octree.Vec3
	Created                *uint64
	LastEditedBy           *uuid.UUID
	QueryAACube            *octree.AACube
	CanCastShadow          *bool
	RenderLayer            *uint32
	PrimitiveMode          *uint32
	IgnorePickIntersection *bool
	RenderWithZones        *[]uuid.UUID
	BillboardMode          *uint32

	Grab *GrabProperties

	// Physics
	Density           *float32
	Velocity          *octree.Vec3
	AngularVelocity   *octree.Vec3
	Gravity           *octree.Vec3
	Damping           *float32
	AngularDamping    *float32
	Restitution       *float32
	Friction          *float32
	Lifetime          *float32
	Collisionless     *bool
	CollisionMask     *uint16
	Dynamic           *bool
	CollisionSoundURL *string
	ActionData        *[]byte

	// Scripts
	Script          *string
	ScriptTimestamp *uint64
	ServerScripts   *string

	// Common across several types
	ShapeType        *uint32
	CompoundShapeURL *string
	Color            *octree.Color
	Alpha            *float32
	Textures         *string

	Pulse *PulseProperties

	// Shape
	Shape *string

	// Model
	ModelURL               *string
	ModelScale             *octree.Vec3
	JointRotations         *[]octree.Quat
	JointTranslations      *[]octree.Vec3
	RelayParentJoints      *bool
	GroupCulled            *bool
	BlendshapeCoefficients *string
	UseOriginalPivot       *bool
	Animation              *AnimationProperties

	// Light
	IsSpotlight   *bool
	Intensity     *float32
	Exponent      *float32
	Cutoff        *float32
	FalloffRadius *float32

	// Text
	Text                *string
	LineHeight          *float32
	TextColor           *octree.Color
	TextAlpha           *float32
	BackgroundColor     *octree.Color
	BackgroundAlpha     *float32
	Unlit               *bool
	Font                *string
	TextEffect          *uint32
	TextEffectColor     *octree.Color
	TextEffectThickness *float32
	TextAlignment       *uint32

	// Zone
	KeyLight         *KeyLightProperties
	AmbientLight     *AmbientLightProperties
	Skybox           *SkyboxProperties
	Haze             *HazeProperties
	Bloom            *BloomProperties
	ToneMapping      *ToneMappingProperties
	FlyingAllowed    *bool
	GhostingAllowed  *bool
	FilterURL        *string
	KeyLightMode     *uint32
	AmbientLightMode *uint32
	SkyboxMode       *uint32
	HazeMode         *uint32
	BloomMode        *uint32
	AvatarPriority   *uint32
	Screenshare      *uint32

	// Web
	SourceURL                  *string
	DPI                        *uint16
	ScriptURL                  *string
	MaxFPS                     *uint8
	InputMode                  *uint32
	ShowKeyboardFocusHighlight *bool
	WebUseBackground           *bool
	UserAgent                  *string

	// Image
	ImageURL        *string
	Emissive        *bool
	KeepAspectRatio *bool
	SubImage        *octree.Rect

	// Grid
	GridFollowCamera *bool
	MajorGridEvery   *uint32
	MinorGridEvery   *float32

	// Gizmo
	GizmoType *uint32
	Ring      *RingProperties

	// Material
	MaterialURL          *string
	MaterialMappingMode  *uint32
	MaterialPriority     *uint16
	ParentMaterialName   *string
	MaterialMappingPos   *octree.Vec2
	MaterialMappingScale *octree.Vec2
	MaterialMappingRot   *float32
	MaterialData         *string
	MaterialRepeat       *bool

	// ParticleEffect
	MaxParticles       *uint32
	ParticleLifespan   *float32
	EmitRate           *float32
	EmitSpeed          *float32
	SpeedSpread        *float32
	EmitOrientation    *octree.Quat
	EmitDimensions     *octree.Vec3
	EmitRadiusStart    *float32
	PolarStart         *float32
	PolarFinish        *float32
	AzimuthStart       *float32
	AzimuthFinish      *float32
	EmitAcceleration   *octree.Vec3
	AccelerationSpread *octree.Vec3
	ParticleRadius     *float32
	RadiusSpread       *float32
	RadiusStart        *float32
	RadiusFinish       *float32
	EmitterShouldTrail *bool

	// PolyVox
	VoxelVolumeSize   *octree.Vec3
	VoxelData         *[]byte
	VoxelSurfaceStyle *uint16
	XTextureURL       *string
	YTextureURL       *string
	ZTextureURL       *string
	XNNeighborID      *uuid.UUID
	YNNeighborID      *uuid.UUID
	ZNNeighborID      *uuid.UUID
	XPNeighborID      *uuid.UUID
	YPNeighborID      *uuid.UUID
	ZPNeighborID      *uuid.UUID

	// PolyLine
	LinePoints      *[]octree.Vec3
	StrokeNormals   *[]octree.Vec3
	StrokeColors    *[]octree.Vec3
	IsUVModeStretch *bool
	LineGlow        *bool
	LineFaceCamera  *bool
}

// GrabProperties is the grab property group.
type GrabProperties struct {
	Grabbable         *bool
	Kinematic         *bool
	FollowsController *bool
	Triggerable       *bool
	Equippable        *bool
	DelegateToParent  *bool
}

// PulseProperties is the pulse property group.
type PulseProperties struct {
	Min       *float32
	Max       *float32
	Period    *float32
	ColorMode *uint32
	AlphaMode *uint32
}

// AnimationProperties is the animation property group (Model and
// ParticleEffect entities).
type AnimationProperties struct {
	URL              *string
	AllowTranslation *bool
	FPS              *float32
	FrameIndex       *float32
	Playing          *bool
	Loop             *bool
	FirstFrame       *float32
	LastFrame        *float32
	Hold             *bool
}

// KeyLightProperties is the key light property group (Zone entities).
type KeyLightProperties struct {
	Color             *octree.Color
	Intensity         *float32
	Direction         *octree.Vec3
	CastShadows       *bool
	ShadowBias        *float32
	ShadowMaxDistance *float32
}

// AmbientLightProperties is the ambient light property group (Zone entities).
type AmbientLightProperties struct {
	Intensity *float32
	URL       *string
}

// SkyboxProperties is the skybox property group (Zone entities).
type SkyboxProperties struct {
	Color *octree.Color
	URL   *string
}

// HazeProperties is the haze property group (Zone entities).
type HazeProperties struct {
	Range             *float32
	Color             *octree.Color
	GlareColor        *octree.Color
	EnableGlare       *bool
	GlareAngle        *float32
	AltitudeEffect    *bool
	Ceiling           *float32
	BaseRef           *float32
	BackgroundBlend   *float32
	AttenuateKeyLight *bool
	KeyLightRange     *float32
	KeyLightAltitude  *float32
}

// BloomProperties is the bloom property group (Zone entities).
type BloomProperties struct {
	Intensity *float32
	Threshold *float32
	Size      *float32
}

// ToneMappingProperties is the tonemapping property group (Zone entities).
type ToneMappingProperties struct {
	Curve    *uint32
	Exposure *float32
}

// RingProperties is the ring property group (Gizmo entities).
type RingProperties struct {
	StartAngle      *float32
	EndAngle        *float32
	InnerRadius     *float32
	InnerStartColor *octree.Color
	InnerEndColor   *octree.Color
	OuterStartColor *octree.Color
	OuterEndColor   *octree.Color
	HasTickMarks    *bool
}
