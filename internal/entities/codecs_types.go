package entities

import (
	"github.com/vistaverse/vista/internal/octree"
)

// Per-entity-type codec tables. Each table is the wire-ordered property
// block that follows the common block for that type. Shared sub-lists
// (color/alpha, pulse, animation, the zone groups) are declared once and
// spliced in so every type sees identical layouts for shared codes.

func concatCodecs(lists ...[]fieldCodec) []fieldCodec {
	var out []fieldCodec
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

var shapeTypeCodecs = []fieldCodec{
	newField(PropShapeType,
		func(p *EntityProperties) *uint32 { return p.ShapeType },
		func(p *EntityProperties, v uint32) { p.ShapeType = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
	newField(PropCompoundShapeURL,
		func(p *EntityProperties) *string { return p.CompoundShapeURL },
		func(p *EntityProperties, v string) { p.CompoundShapeURL = &v },
		octree.AppendStringValue, octree.ReadStringValue),
}

var colorCodecs = []fieldCodec{
	newField(PropColor,
		func(p *EntityProperties) *octree.Color { return p.Color },
		func(p *EntityProperties, v octree.Color) { p.Color = &v },
		octree.AppendColorValue, octree.ReadColorValue),
}

var alphaCodecs = []fieldCodec{
	newField(PropAlpha,
		func(p *EntityProperties) *float32 { return p.Alpha },
		func(p *EntityProperties, v float32) { p.Alpha = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
}

var pulseCodecs = []fieldCodec{
	newField(PropPulseMin,
		func(p *EntityProperties) *float32 {
			if p.Pulse == nil {
				return nil
			}
			return p.Pulse.Min
		},
		func(p *EntityProperties, v float32) { ensurePulse(p).Min = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropPulseMax,
		func(p *EntityProperties) *float32 {
			if p.Pulse == nil {
				return nil
			}
			return p.Pulse.Max
		},
		func(p *EntityProperties, v float32) { ensurePulse(p).Max = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropPulsePeriod,
		func(p *EntityProperties) *float32 {
			if p.Pulse == nil {
				return nil
			}
			return p.Pulse.Period
		},
		func(p *EntityProperties, v float32) { ensurePulse(p).Period = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropPulseColorMode,
		func(p *EntityProperties) *uint32 {
			if p.Pulse == nil {
				return nil
			}
			return p.Pulse.ColorMode
		},
		func(p *EntityProperties, v uint32) { ensurePulse(p).ColorMode = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
	newField(PropPulseAlphaMode,
		func(p *EntityProperties) *uint32 {
			if p.Pulse == nil {
				return nil
			}
			return p.Pulse.AlphaMode
		},
		func(p *EntityProperties, v uint32) { ensurePulse(p).AlphaMode = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
}

var texturesCodecs = []fieldCodec{
	newField(PropTextures,
		func(p *EntityProperties) *string { return p.Textures },
		func(p *EntityProperties, v string) { p.Textures = &v },
		octree.AppendStringValue, octree.ReadStringValue),
}

var animationCodecs = []fieldCodec{
	newField(PropAnimationURL,
		func(p *EntityProperties) *string {
			if p.Animation == nil {
				return nil
			}
			return p.Animation.URL
		},
		func(p *EntityProperties, v string) { ensureAnimation(p).URL = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropAnimationAllowTranslation,
		func(p *EntityProperties) *bool {
			if p.Animation == nil {
				return nil
			}
			return p.Animation.AllowTranslation
		},
		func(p *EntityProperties, v bool) { ensureAnimation(p).AllowTranslation = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropAnimationFPS,
		func(p *EntityProperties) *float32 {
			if p.Animation == nil {
				return nil
			}
			return p.Animation.FPS
		},
		func(p *EntityProperties, v float32) { ensureAnimation(p).FPS = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropAnimationFrameIndex,
		func(p *EntityProperties) *float32 {
			if p.Animation == nil {
				return nil
			}
			return p.Animation.FrameIndex
		},
		func(p *EntityProperties, v float32) { ensureAnimation(p).FrameIndex = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropAnimationPlaying,
		func(p *EntityProperties) *bool {
			if p.Animation == nil {
				return nil
			}
			return p.Animation.Playing
		},
		func(p *EntityProperties, v bool) { ensureAnimation(p).Playing = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropAnimationLoop,
		func(p *EntityProperties) *bool {
			if p.Animation == nil {
				return nil
			}
			return p.Animation.Loop
		},
		func(p *EntityProperties, v bool) { ensureAnimation(p).Loop = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropAnimationFirstFrame,
		func(p *EntityProperties) *float32 {
			if p.Animation == nil {
				return nil
			}
			return p.Animation.FirstFrame
		},
		func(p *EntityProperties, v float32) { ensureAnimation(p).FirstFrame = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropAnimationLastFrame,
		func(p *EntityProperties) *float32 {
			if p.Animation == nil {
				return nil
			}
			return p.Animation.LastFrame
		},
		func(p *EntityProperties, v float32) { ensureAnimation(p).LastFrame = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropAnimationHold,
		func(p *EntityProperties) *bool {
			if p.Animation == nil {
				return nil
			}
			return p.Animation.Hold
		},
		func(p *EntityProperties, v bool) { ensureAnimation(p).Hold = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
}

var shapeCodecs = concatCodecs(colorCodecs, alphaCodecs, pulseCodecs, []fieldCodec{
	newField(PropShape,
		func(p *EntityProperties) *string { return p.Shape },
		func(p *EntityProperties, v string) { p.Shape = &v },
		octree.AppendStringValue, octree.ReadStringValue),
})

var modelCodecs = concatCodecs(shapeTypeCodecs, colorCodecs, texturesCodecs, []fieldCodec{
	newField(PropModelURL,
		func(p *EntityProperties) *string { return p.ModelURL },
		func(p *EntityProperties, v string) { p.ModelURL = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropModelScale,
		func(p *EntityProperties) *octree.Vec3 { return p.ModelScale },
		func(p *EntityProperties, v octree.Vec3) { p.ModelScale = &v },
		octree.AppendVec3Value, octree.ReadVec3Value),
	newField(PropJointRotations,
		func(p *EntityProperties) *[]octree.Quat { return p.JointRotations },
		func(p *EntityProperties, v []octree.Quat) { p.JointRotations = &v },
		octree.AppendQuatArrayValue, octree.ReadQuatArrayValue),
	newField(PropJointTranslations,
		func(p *EntityProperties) *[]octree.Vec3 { return p.JointTranslations },
		func(p *EntityProperties, v []octree.Vec3) { p.JointTranslations = &v },
		octree.AppendVec3ArrayValue, octree.ReadVec3ArrayValue),
	newField(PropRelayParentJoints,
		func(p *EntityProperties) *bool { return p.RelayParentJoints },
		func(p *EntityProperties, v bool) { p.RelayParentJoints = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropGroupCulled,
		func(p *EntityProperties) *bool { return p.GroupCulled },
		func(p *EntityProperties, v bool) { p.GroupCulled = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropBlendshapeCoefficients,
		func(p *EntityProperties) *string { return p.BlendshapeCoefficients },
		func(p *EntityProperties, v string) { p.BlendshapeCoefficients = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropUseOriginalPivot,
		func(p *EntityProperties) *bool { return p.UseOriginalPivot },
		func(p *EntityProperties, v bool) { p.UseOriginalPivot = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
}, animationCodecs)

var lightCodecs = concatCodecs(colorCodecs, []fieldCodec{
	newField(PropIsSpotlight,
		func(p *EntityProperties) *bool { return p.IsSpotlight },
		func(p *EntityProperties, v bool) { p.IsSpotlight = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropIntensity,
		func(p *EntityProperties) *float32 { return p.Intensity },
		func(p *EntityProperties, v float32) { p.Intensity = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropExponent,
		func(p *EntityProperties) *float32 { return p.Exponent },
		func(p *EntityProperties, v float32) { p.Exponent = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropCutoff,
		func(p *EntityProperties) *float32 { return p.Cutoff },
		func(p *EntityProperties, v float32) { p.Cutoff = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropFalloffRadius,
		func(p *EntityProperties) *float32 { return p.FalloffRadius },
		func(p *EntityProperties, v float32) { p.FalloffRadius = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
})

var textCodecs = concatCodecs(pulseCodecs, []fieldCodec{
	newField(PropText,
		func(p *EntityProperties) *string { return p.Text },
		func(p *EntityProperties, v string) { p.Text = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropLineHeight,
		func(p *EntityProperties) *float32 { return p.LineHeight },
		func(p *EntityProperties, v float32) { p.LineHeight = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropTextColor,
		func(p *EntityProperties) *octree.Color { return p.TextColor },
		func(p *EntityProperties, v octree.Color) { p.TextColor = &v },
		octree.AppendColorValue, octree.ReadColorValue),
	newField(PropTextAlpha,
		func(p *EntityProperties) *float32 { return p.TextAlpha },
		func(p *EntityProperties, v float32) { p.TextAlpha = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropBackgroundColor,
		func(p *EntityProperties) *octree.Color { return p.BackgroundColor },
		func(p *EntityProperties, v octree.Color) { p.BackgroundColor = &v },
		octree.AppendColorValue, octree.ReadColorValue),
	newField(PropBackgroundAlpha,
		func(p *EntityProperties) *float32 { return p.BackgroundAlpha },
		func(p *EntityProperties, v float32) { p.BackgroundAlpha = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropUnlit,
		func(p *EntityProperties) *bool { return p.Unlit },
		func(p *EntityProperties, v bool) { p.Unlit = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropFont,
		func(p *EntityProperties) *string { return p.Font },
		func(p *EntityProperties, v string) { p.Font = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropTextEffect,
		func(p *EntityProperties) *uint32 { return p.TextEffect },
		func(p *EntityProperties, v uint32) { p.TextEffect = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
	newField(PropTextEffectColor,
		func(p *EntityProperties) *octree.Color { return p.TextEffectColor },
		func(p *EntityProperties, v octree.Color) { p.TextEffectColor = &v },
		octree.AppendColorValue, octree.ReadColorValue),
	newField(PropTextEffectThickness,
		func(p *EntityProperties) *float32 { return p.TextEffectThickness },
		func(p *EntityProperties, v float32) { p.TextEffectThickness = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
	newField(PropTextAlignment,
		func(p *EntityProperties) *uint32 { return p.TextAlignment },
		func(p *EntityProperties, v uint32) { p.TextAlignment = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
})

var webCodecs = concatCodecs(colorCodecs, alphaCodecs, pulseCodecs, []fieldCodec{
	newField(PropSourceURL,
		func(p *EntityProperties) *string { return p.SourceURL },
		func(p *EntityProperties, v string) { p.SourceURL = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropDPI,
		func(p *EntityProperties) *uint16 { return p.DPI },
		func(p *EntityProperties, v uint16) { p.DPI = &v },
		octree.AppendUint16Value, octree.ReadUint16Value),
	newField(PropScriptURL,
		func(p *EntityProperties) *string { return p.ScriptURL },
		func(p *EntityProperties, v string) { p.ScriptURL = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropMaxFPS,
		func(p *EntityProperties) *uint8 { return p.MaxFPS },
		func(p *EntityProperties, v uint8) { p.MaxFPS = &v },
		octree.AppendUint8Value, octree.ReadUint8Value),
	newField(PropInputMode,
		func(p *EntityProperties) *uint32 { return p.InputMode },
		func(p *EntityProperties, v uint32) { p.InputMode = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
	newField(PropShowKeyboardFocusHighlight,
		func(p *EntityProperties) *bool { return p.ShowKeyboardFocusHighlight },
		func(p *EntityProperties, v bool) { p.ShowKeyboardFocusHighlight = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropWebUseBackground,
		func(p *EntityProperties) *bool { return p.WebUseBackground },
		func(p *EntityProperties, v bool) { p.WebUseBackground = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropUserAgent,
		func(p *EntityProperties) *string { return p.UserAgent },
		func(p *EntityProperties, v string) { p.UserAgent = &v },
		octree.AppendStringValue, octree.ReadStringValue),
})

var imageCodecs = concatCodecs(colorCodecs, alphaCodecs, pulseCodecs, []fieldCodec{
	newField(PropImageURL,
		func(p *EntityProperties) *string { return p.ImageURL },
		func(p *EntityProperties, v string) { p.ImageURL = &v },
		octree.AppendStringValue, octree.ReadStringValue),
	newField(PropEmissive,
		func(p *EntityProperties) *bool { return p.Emissive },
		func(p *EntityProperties, v bool) { p.Emissive = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropKeepAspectRatio,
		func(p *EntityProperties) *bool { return p.KeepAspectRatio },
		func(p *EntityProperties, v bool) { p.KeepAspectRatio = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropSubImage,
		func(p *EntityProperties) *octree.Rect { return p.SubImage },
		func(p *EntityProperties, v octree.Rect) { p.SubImage = &v },
		octree.AppendRectValue, octree.ReadRectValue),
})

var gridCodecs = concatCodecs(colorCodecs, alphaCodecs, pulseCodecs, []fieldCodec{
	newField(PropGridFollowCamera,
		func(p *EntityProperties) *bool { return p.GridFollowCamera },
		func(p *EntityProperties, v bool) { p.GridFollowCamera = &v },
		octree.AppendBoolValue, octree.ReadBoolValue),
	newField(PropMajorGridEvery,
		func(p *EntityProperties) *uint32 { return p.MajorGridEvery },
		func(p *EntityProperties, v uint32) { p.MajorGridEvery = &v },
		octree.AppendUint32Value, octree.ReadUint32Value),
	newField(PropMinorGridEvery,
		func(p *EntityProperties) *float32 { return p.MinorGridEvery },
		func(p *EntityProperties, v float32) { p.MinorGridEvery = &v },
		octree.AppendFloat32Value, octree.ReadFloat32Value),
})
