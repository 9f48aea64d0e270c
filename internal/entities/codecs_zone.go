package entities

import (
	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/octree"
)

var keyLightCodecs = []fieldCodec{
	newField(PropKeyLightColor,
		func(p *EntityProperties) *octree.Color {
			if p.KeyLight == nil {
				return nil
			}
			return p.KeyLight.Color
		},
		func(p *EntityProperties, v octree.Color) { ensureKeyLight(p).Color = &v },
		octree.AppendColorValue, octree.ReadColorValue),
	newField(PropKeyLightIntensity,
		func(p *EntityProperties) *float32 {
			if p.KeyLight == nil {
				return nil
			}
			return p.KeyLight.Intensity
		},
		func(p *EntityProperties, v float32) { ensureKeyLight(p).Intensity = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropKeyLightDirection,
		func(p *EntityProperties) *octree.Vec3 {
			if p.KeyLight == nil {
				return nil
			}
			return p.KeyLight.Direction
		},
		func(p *EntityProperties, v octree.Vec3) { ensureKeyLight(p).Direction = &v },
		octree.AppendVec3Value, octree.ReadVec3Value),
	newField(PropKeyLightCastShadows,
		func(p *EntityProperties) *bool {
			if p.KeyLight == nil {
				return nil
			}
			return p.KeyLight.CastShadows
		},
		func(p *EntityProperties, v bool) { ensureKeyLight(p).CastShadows = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropKeyLightShadowBias,
		func(p *EntityProperties) *float32 {
			if p.KeyLight == nil {
				return nil
			}
			return p.KeyLight.ShadowBias
		},
		func(p *EntityProperties, v float32) { ensureKeyLight(p).ShadowBias = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropKeyLightShadowMaxDistance,
		func(p *EntityProperties) *float32 {
			if p.KeyLight == nil {
				return nil
			}
			return p.KeyLight.ShadowMaxDistance
		},
		func(p *EntityProperties, v float32) { ensureKeyLight(p).ShadowMaxDistance = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
}

var ambientLightCodecs = []fieldCodec{
	newField(PropAmbientLightIntensity,
		func(p *EntityProperties) *float32 {
			if p.AmbientLight == nil {
				return nil
			}
			return p.AmbientLight.Intensity
		},
		func(p *EntityProperties, v float32) { ensureAmbientLight(p).Intensity = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropAmbientLightURL,
		func(p *EntityProperties) *string {
			if p.AmbientLight == nil {
				return nil
			}
			return p.AmbientLight.URL
		},
		func(p *EntityProperties, v string) { ensureAmbientLight(p).URL = &v },
		octree.AppendStringValue, octree.ReadStringValue),
}

var skyboxCodecs = []fieldCodec{
	newField(PropSkyboxColor,
		func(p *EntityProperties) *octree.Color {
			if p.Skybox == nil {
				return nil
			}
			return p.Skybox.Color
		},
		func(p *EntityProperties, v octree.Color) { ensureSkybox(p).Color = &v },
		octree.AppendColorValue, octree.ReadColorValue),
	newField(PropSkyboxURL,
		func(p *EntityProperties) *string {
			if p.Skybox == nil {
				return nil
			}
			return p.Skybox.URL
		},
		func(p *EntityProperties, v string) { ensureSkybox(p).URL = &v },
		octree.AppendStringValue, octree.ReadStringValue),
}

var hazeCodecs = []fieldCodec{
	newField(PropHazeRange,
		func(p *EntityProperties) *float32 {
			if p.Haze == nil {
				return nil
			}
			return p.Haze.Range
		},
		func(p *EntityProperties, v float32) { ensureHaze(p).Range = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropHazeColor,
		func(p *EntityProperties) *octree.Color {
			if p.Haze == nil {
				return nil
			}
			return p.Haze.Color
		},
		func(p *EntityProperties, v octree.Color) { ensureHaze(p).Color = &v },
		octree.AppendColorValue, octree.ReadColorValue),
	newField(PropHazeGlareColor,
		func(p *EntityProperties) *octree.Color {
			if p.Haze == nil {
				return nil
			}
			return p.Haze.GlareColor
		},
		func(p *EntityProperties, v octree.Color) { ensureHaze(p).GlareColor = &v },
		octree.AppendColorValue, octree.ReadColorValue),
	newField(PropHazeEnableGlare,
		func(p *EntityProperties) *bool {
			if p.Haze == nil {
				return nil
			}
			return p.Haze.EnableGlare
		},
		func(p *EntityProperties, v bool) { ensureHaze(p).EnableGlare = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropHazeGlareAngle,
		func(p *EntityProperties) *float32 {
			if p.Haze == nil {
				return nil
			}
			return p.Haze.GlareAngle
		},
		func(p *EntityProperties, v float32) { ensureHaze(p).GlareAngle = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropHazeAltitudeEffect,
		func(p *EntityProperties) *bool {
			if p.Haze == nil {
				return nil
			}
			return p.Haze.AltitudeEffect
		},
		func(p *EntityProperties, v bool) { ensureHaze(p).AltitudeEffect = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropHazeCeiling,
		func(p *EntityProperties) *float32 {
			if p.Haze == nil {
				return nil
			}
			return p.Haze.Ceiling
		},
		func(p *EntityProperties, v float32) { ensureHaze(p).Ceiling = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropHazeBaseRef,
		func(p *EntityProperties) *float32 {
			if p.Haze == nil {
				return nil
			}
			return p.Haze.BaseRef
		},
		func(p *EntityProperties, v float32) { ensureHaze(p).BaseRef = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropHazeBackgroundBlend,
		func(p *EntityProperties) *float32 {
			if p.Haze == nil {
				return nil
			}
			return p.Haze.BackgroundBlend
		},
		func(p *EntityProperties, v float32) { ensureHaze(p).BackgroundBlend = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropHazeAttenuateKeyLight,
		func(p *EntityProperties) *bool {
			if p.Haze == nil {
				return nil
			}
			return p.Haze.AttenuateKeyLight
		},
		func(p *EntityProperties, v bool) { ensureHaze(p).AttenuateKeyLight = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropHazeKeyLightRange,
		func(p *EntityProperties) *float32 {
			if p.Haze == nil {
				return nil
			}
			return p.Haze.KeyLightRange
		},
		func(p *EntityProperties, v float32) { ensureHaze(p).KeyLightRange = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropHazeKeyLightAltitude,
		func(p *EntityProperties) *float32 {
			if p.Haze == nil {
				return nil
			}
			return p.Haze.KeyLightAltitude
		},
		func(p *EntityProperties, v float32) { ensureHaze(p).KeyLightAltitude = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
}

var bloomCodecs = []fieldCodec{
	newField(PropBloomIntensity,
		func(p *EntityProperties) *float32 {
			if p.Bloom == nil {
				return nil
			}
			return p.Bloom.Intensity
		},
		func(p *EntityProperties, v float32) { ensureBloom(p).Intensity = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropBloomThreshold,
		func(p *EntityProperties) *float32 {
			if p.Bloom == nil {
				return nil
			}
			return p.Bloom.Threshold
		},
		func(p *EntityProperties, v float32) { ensureBloom(p).Threshold = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropBloomSize,
		func(p *EntityProperties) *float32 {
			if p.Bloom == nil {
				return nil
			}
			return p.Bloom.Size
		},
		func(p *EntityProperties, v float32) { ensureBloom(p).Size = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
}

var toneMappingCodecs = []fieldCodec{
	newField(PropToneMappingCurve,
		func(p *EntityProperties) *uint32 {
			if p.ToneMapping == nil {
				return nil
			}
			return p.ToneMapping.Curve
		},
		func(p *EntityProperties, v uint32) { ensureToneMapping(p).Curve = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
	newField(PropToneMappingExposure,
		func(p *EntityProperties) *float32 {
			if p.ToneMapping == nil {
				return nil
			}
			return p.ToneMapping.Exposure
		},
		func(p *EntityProperties, v float32) { ensureToneMapping(p).Exposure = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
}

var zoneCodecs = concatCodecs(shapeTypeCodecs, keyLightCodecs, ambientLightCodecs,
	skyboxCodecs, hazeCodecs, bloomCodecs, []fieldCodec{
		newField(PropFlyingAllowed,
			func(p *EntityProperties) *bool { return p.FlyingAllowed },
			func(p *EntityProperties, v bool) { p.FlyingAllowed = &v },
			octree.AppendBoolValue, octree.ReadBoolValue),
		newField(PropGhostingAllowed,
			func(p *EntityProperties) *bool { return p.GhostingAllowed },
			func(p *EntityProperties, v bool) { p.GhostingAllowed = &v },
			octree.AppendBoolValue, octree.ReadBoolValue),
		newField(PropFilterURL,
			func(p *EntityProperties) *string { return p.FilterURL },
			func(p *EntityProperties, v string) { p.FilterURL = &v },
			octree.AppendStringValue, octree.ReadStringValue),
		newField(PropKeyLightMode,
			func(p *EntityProperties) *uint32 { return p.KeyLightMode },
			func(p *EntityProperties, v uint32) { p.KeyLightMode = &v },
			octree.AppendUint32Value, octree.ReadUint32Value),
		newField(PropAmbientLightMode,
			func(p *EntityProperties) *uint32 { return p.AmbientLightMode },
			func(p *EntityProperties, v uint32) { p.AmbientLightMode = &v },
			octree.AppendUint32Value, octree.ReadUint32Value),
		newField(PropSkyboxMode,
			func(p *EntityProperties) *uint32 { return p.SkyboxMode },
			func(p *EntityProperties, v uint32) { p.SkyboxMode = &v },
			octree.AppendUint32Value, octree.ReadUint32Value),
		newField(PropHazeMode,
			func(p *EntityProperties) *uint32 { return p.HazeMode },
			func(p *EntityProperties, v uint32) { p.HazeMode = &v },
			octree.AppendUint32Value, octree.ReadUint32Value),
		newField(PropBloomMode,
			func(p *EntityProperties) *uint32 { return p.BloomMode },
			func(p *EntityProperties, v uint32) { p.BloomMode = &v },
			octree.AppendUint32Value, octree.ReadUint32Value),
		newField(PropAvatarPriority,
			func(p *EntityProperties) *uint32 { return p.AvatarPriority },
			func(p *EntityProperties, v uint32) { p.AvatarPriority = &v },
			octree.AppendUint32Value, octree.ReadUint32Value),
		newField(PropScreenshare,
			func(p *EntityProperties) *uint32 { return p.Screenshare },
			func(p *EntityProperties, v uint32) { p.Screenshare = &v },
			octree.AppendUint32Value, octree.ReadUint32Value),
	}, toneMappingCodecs)

var gizmoCodecs = concatCodecs(colorCodecs, alphaCodecs, []fieldCodec{
	newField(PropGizmoType,
		func(p *EntityProperties) *uint32 { return p.GizmoType },
		func(p *EntityProperties, v uint32) { p.GizmoType = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
	newField(PropRingStartAngle,
		func(p *EntityProperties) *float32 {
			if p.Ring == nil {
				return nil
			}
			return p.Ring.StartAngle
		},
		func(p *EntityProperties, v float32) { ensureRing(p).StartAngle = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropRingEndAngle,
		func(p *EntityProperties) *float32 {
			if p.Ring == nil {
				return nil
			}
			return p.Ring.EndAngle
		},
		func(p *EntityProperties, v float32) { ensureRing(p).EndAngle = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropRingInnerRadius,
		func(p *EntityProperties) *float32 {
			if p.Ring == nil {
				return nil
			}
			return p.Ring.InnerRadius
		},
		func(p *EntityProperties, v float32) { ensureRing(p).InnerRadius = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropRingInnerStartColor,
		func(p *EntityProperties) *octree.Color {
			if p.Ring == nil {
				return nil
			}
			return p.Ring.InnerStartColor
		},
		func(p *EntityProperties, v octree.Color) { ensureRing(p).InnerStartColor = &v },
		octree.AppendColorValue, octree.ReadColorValue),
	newField(PropRingInnerEndColor,
		func(p *EntityProperties) *octree.Color {
			if p.Ring == nil {
				return nil
			}
			return p.Ring.InnerEndColor
		},
		func(p *EntityProperties, v octree.Color) { ensureRing(p).InnerEndColor = &v },
		octree.AppendColorValue, octree.ReadColorValue),
	newField(PropRingOuterStartColor,
		func(p *EntityProperties) *octree.Color {
			if p.Ring == nil {
				return nil
			}
			return p.Ring.OuterStartColor
		},
		func(p *EntityProperties, v octree.Color) { ensureRing(p).OuterStartColor = &v },
		octree.AppendColorValue, octree.ReadColorValue),
	newField(PropRingOuterEndColor,
		func(p *EntityProperties) *octree.Color {
			if p.Ring == nil {
				return nil
			}
			return p.Ring.OuterEndColor
		},
		func(p *EntityProperties, v octree.Color) { ensureRing(p).OuterEndColor = &v },
		octree.AppendColorValue, octree.ReadColorValue),
	newField(PropRingHasTickMarks,
		func(p *EntityProperties) *bool {
			if p.Ring == nil {
				return nil
			}
			return p.Ring.HasTickMarks
		},
		func(p *EntityProperties, v bool) { ensureRing(p).HasTickMarks = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
})

var materialCodecs = []fieldCodec{
	newField(PropMaterialURL,
		func(p *EntityProperties) *string { return p.MaterialURL },
		func(p *EntityProperties, v string) { p.MaterialURL = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropMaterialMappingMode,
		func(p *EntityProperties) *uint32 { return p.MaterialMappingMode },
		func(p *EntityProperties, v uint32) { p.MaterialMappingMode = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
	newField(PropMaterialPriority,
		func(p *EntityProperties) *uint16 { return p.MaterialPriority },
		func(p *EntityProperties, v uint16) { p.MaterialPriority = &v },
		octree.AppendUint16Value, octree.ReadUint16Value),
	newField(PropParentMaterialName,
		func(p *EntityProperties) *string { return p.ParentMaterialName },
		func(p *EntityProperties, v string) { p.ParentMaterialName = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropMaterialMappingPos,
		func(p *EntityProperties) *octree.Vec2 { return p.MaterialMappingPos },
		func(p *EntityProperties, v octree.Vec2) { p.MaterialMappingPos = &v },
		octree.AppendVec2Value, octree.ReadVec2Value),
	newField(PropMaterialMappingScale,
		func(p *EntityProperties) *octree.Vec2 { return p.MaterialMappingScale },
		func(p *EntityProperties, v octree.Vec2) { p.MaterialMappingScale = &v },
		octree.AppendVec2Value, octree.ReadVec2Value),
	newField(PropMaterialMappingRot,
		func(p *EntityProperties) *float32 { return p.MaterialMappingRot },
		func(p *EntityProperties, v float32) { p.MaterialMappingRot = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropMaterialData,
		func(p *EntityProperties) *string { return p.MaterialData },
		func(p *EntityProperties, v string) { p.MaterialData = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropMaterialRepeat,
		func(p *EntityProperties) *bool { return p.MaterialRepeat },
		func(p *EntityProperties, v bool) { p.MaterialRepeat = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
}

var particleCodecs = concatCodecs(colorCodecs, alphaCodecs, texturesCodecs, animationCodecs, []fieldCodec{
	newField(PropMaxParticles,
		func(p *EntityProperties) *uint32 { return p.MaxParticles },
		func(p *EntityProperties, v uint32) { p.MaxParticles = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
	newField(PropParticleLifespan,
		func(p *EntityProperties) *float32 { return p.ParticleLifespan },
		func(p *EntityProperties, v float32) { p.ParticleLifespan = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropEmitRate,
		func(p *EntityProperties) *float32 { return p.EmitRate },
		func(p *EntityProperties, v float32) { p.EmitRate = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropEmitSpeed,
		func(p *EntityProperties) *float32 { return p.EmitSpeed },
		func(p *EntityProperties, v float32) { p.EmitSpeed = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropSpeedSpread,
		func(p *EntityProperties) *float32 { return p.SpeedSpread },
		func(p *EntityProperties, v float32) { p.SpeedSpread = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropEmitOrientation,
		func(p *EntityProperties) *octree.Quat { return p.EmitOrientation },
		func(p *EntityProperties, v octree.Quat) { p.EmitOrientation = &v },
		octree.AppendQuatValue, octree.ReadQuatValue),
	newField(PropEmitDimensions,
		func(p *EntityProperties) *octree.Vec3 { return p.EmitDimensions },
		func(p *EntityProperties, v octree.Vec3) { p.EmitDimensions = &v },
		octree.AppendVec3Value, octree.ReadVec3Value),
	newField(PropEmitRadiusStart,
		func(p *EntityProperties) *float32 { return p.EmitRadiusStart },
		func(p *EntityProperties, v float32) { p.EmitRadiusStart = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropPolarStart,
		func(p *EntityProperties) *float32 { return p.PolarStart },
		func(p *EntityProperties, v float32) { p.PolarStart = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropPolarFinish,
		func(p *EntityProperties) *float32 { return p.PolarFinish },
		func(p *EntityProperties, v float32) { p.PolarFinish = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropAzimuthStart,
		func(p *EntityProperties) *float32 { return p.AzimuthStart },
		func(p *EntityProperties, v float32) { p.AzimuthStart = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropAzimuthFinish,
		func(p *EntityProperties) *float32 { return p.AzimuthFinish },
		func(p *EntityProperties, v float32) { p.AzimuthFinish = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropEmitAcceleration,
		func(p *EntityProperties) *octree.Vec3 { return p.EmitAcceleration },
		func(p *EntityProperties, v octree.Vec3) { p.EmitAcceleration = &v },
		octree.AppendVec3Value, octree.ReadVec3Value),
	newField(PropAccelerationSpread,
		func(p *EntityProperties) *octree.Vec3 { return p.AccelerationSpread },
		func(p *EntityProperties, v octree.Vec3) { p.AccelerationSpread = &v },
		octree.AppendVec3Value, octree.ReadVec3Value),
	newField(PropParticleRadius,
		func(p *EntityProperties) *float32 { return p.ParticleRadius },
		func(p *EntityProperties, v float32) { p.ParticleRadius = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropRadiusSpread,
		func(p *EntityProperties) *float32 { return p.RadiusSpread },
		func(p *EntityProperties, v float32) { p.RadiusSpread = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropRadiusStart,
		func(p *EntityProperties) *float32 { return p.RadiusStart },
		func(p *EntityProperties, v float32) { p.RadiusStart = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropRadiusFinish,
		func(p *EntityProperties) *float32 { return p.RadiusFinish },
		func(p *EntityProperties, v float32) { p.RadiusFinish = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropEmitterShouldTrail,
		func(p *EntityProperties) *bool { return p.EmitterShouldTrail },
		func(p *EntityProperties, v bool) { p.EmitterShouldTrail = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
})

func polyVoxNeighborField(flag int,
	peek func(*EntityProperties) *uuid.UUID,
	set func(*EntityProperties, uuid.UUID),
) fieldCodec {
	return newField(flag, peek, set, octree.AppendUUIDValue, octree.ReadUUIDValue)
}

var polyVoxCodecs = []fieldCodec{
	newField(PropVoxelVolumeSize,
		func(p *EntityProperties) *octree.Vec3 { return p.VoxelVolumeSize },
		func(p *EntityProperties, v octree.Vec3) { p.VoxelVolumeSize = &v },
		octree.AppendVec3Value, octree.ReadVec3Value),
	newField(PropVoxelData,
		func(p *EntityProperties) *[]byte { return p.VoxelData },
		func(p *EntityProperties, v []byte) { p.VoxelData = &v },
		octree.AppendByteArrayValue, octree.ReadByteArrayValue),
	newField(PropVoxelSurfaceStyle,
		func(p *EntityProperties) *uint16 { return p.VoxelSurfaceStyle },
		func(p *EntityProperties, v uint16) { p.VoxelSurfaceStyle = &v },
		octree.AppendUint16Value, octree.ReadUint16Value),
	newField(PropXTextureURL,
		func(p *EntityProperties) *string { return p.XTextureURL },
		func(p *EntityProperties, v string) { p.XTextureURL = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropYTextureURL,
		func(p *EntityProperties) *string { return p.YTextureURL },
		func(p *EntityProperties, v string) { p.YTextureURL = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropZTextureURL,
		func(p *EntityProperties) *string { return p.ZTextureURL },
		func(p *EntityProperties, v string) { p.ZTextureURL = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	polyVoxNeighborField(PropXNNeighborID,
		func(p *EntityProperties) *uuid.UUID { return p.XNNeighborID },
		func(p *EntityProperties, v uuid.UUID) { p.XNNeighborID = &v }),
	polyVoxNeighborField(PropYNNeighborID,
		func(p *EntityProperties) *uuid.UUID { return p.YNNeighborID },
		func(p *EntityProperties, v uuid.UUID) { p.YNNeighborID = &v }),
	polyVoxNeighborField(PropZNNeighborID,
		func(p *EntityProperties) *uuid.UUID { return p.ZNNeighborID },
		func(p *EntityProperties, v uuid.UUID) { p.ZNNeighborID = &v }),
	polyVoxNeighborField(PropXPNeighborID,
		func(p *EntityProperties) *uuid.UUID { return p.XPNeighborID },
		func(p *EntityProperties, v uuid.UUID) { p.XPNeighborID = &v }),
	polyVoxNeighborField(PropYPNeighborID,
		func(p *EntityProperties) *uuid.UUID { return p.YPNeighborID },
		func(p *EntityProperties, v uuid.UUID) { p.YPNeighborID = &v }),
	polyVoxNeighborField(PropZPNeighborID,
		func(p *EntityProperties) *uuid.UUID { return p.ZPNeighborID },
		func(p *EntityProperties, v uuid.UUID) { p.ZPNeighborID = &v }),
}

var polyLineCodecs = concatCodecs(colorCodecs, texturesCodecs, []fieldCodec{
	newField(PropLinePoints,
		func(p *EntityProperties) *[]octree.Vec3 { return p.LinePoints },
		func(p *EntityProperties, v []octree.Vec3) { p.LinePoints = &v },
		octree.AppendVec3ArrayValue, octree.ReadVec3ArrayValue),
	newField(PropStrokeNormals,
		func(p *EntityProperties) *[]octree.Vec3 { return p.StrokeNormals },
		func(p *EntityProperties, v []octree.Vec3) { p.StrokeNormals = &v },
		octree.AppendVec3ArrayValue, octree.ReadVec3ArrayValue),
	newField(PropStrokeColors,
		func(p *EntityProperties) *[]octree.Vec3 { return p.StrokeColors },
		func(p *EntityProperties, v []octree.Vec3) { p.StrokeColors = &v },
		octree.AppendVec3ArrayValue, octree.ReadVec3ArrayValue),
	newField(PropIsUVModeStretch,
		func(p *EntityProperties) *bool { return p.IsUVModeStretch },
		func(p *EntityProperties, v bool) { p.IsUVModeStretch = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropLineGlow,
		func(p *EntityProperties) *bool { return p.LineGlow },
		func(p *EntityProperties, v bool) { p.LineGlow = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropLineFaceCamera,
		func(p *EntityProperties) *bool { return p.LineFaceCamera },
		func(p *EntityProperties, v bool) { p.LineFaceCamera = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
})

// codecsForType returns the complete wire-ordered codec list for an entity
// type: the common block followed by the type's own block.
func codecsForType(t EntityType) []fieldCodec {
	var sub []fieldCodec
	switch t {
	case EntityTypeBox, EntityTypeSphere, EntityTypeShape:
		sub = shapeCodecs
	case EntityTypeModel:
		sub = modelCodecs
	case EntityTypeLight:
		sub = lightCodecs
	case EntityTypeText:
		sub = textCodecs
	case EntityTypeZone:
		sub = zoneCodecs
	case EntityTypeWeb:
		sub = webCodecs
	case EntityTypeImage:
		sub = imageCodecs
	case EntityTypeGrid:
		sub = gridCodecs
	case EntityTypeGizmo:
		sub = gizmoCodecs
	case EntityTypeMaterial:
		sub = materialCodecs
	case EntityTypeParticleEffect:
		sub = particleCodecs
	case EntityTypePolyLine:
		sub = polyLineCodecs
	case EntityTypePolyVox:
		sub = polyVoxCodecs
	}
	return concatCodecs(commonCodecs, sub)
}
