package entities

// Entity property codes. The enumeration is closed and ordered: a
// property's position is its bit in the PropertyFlags block, so entries
// must never be reordered or removed — new properties append only.
const (
	PropPagedProperty = iota
	PropCustomPropertiesIncluded

	// Core
	PropSimulationOwner
	PropParentID
	PropParentJointIndex
	PropVisible
	PropName
	PropLocked
	PropUserData
	PropPrivateUserData
	PropHref
	PropDescription
	PropPosition
	PropDimensions
	PropRotation
	PropRegistrationPoint
	PropCreated
	PropLastEditedBy
	PropEntityHostType
	PropOwningAvatarID
	PropQueryAACube
	PropCanCastShadow
	PropVisibleInSecondaryCamera
	PropRenderLayer
	PropPrimitiveMode
	PropIgnorePickIntersection
	PropRenderWithZones
	PropBillboardMode

	// Grab group
	PropGrabGrabbable
	PropGrabKinematic
	PropGrabFollowsController
	PropGrabTriggerable
	PropGrabEquippable
	PropGrabDelegateToParent
	PropGrabLeftEquippablePositionOffset
	PropGrabLeftEquippableRotationOffset
	PropGrabRightEquippablePositionOffset
	PropGrabRightEquippableRotationOffset
	PropGrabEquippableIndicatorURL
	PropGrabEquippableIndicatorScale
	PropGrabEquippableIndicatorOffset

	// Physics
	PropDensity
	PropVelocity
	PropAngularVelocity
	PropGravity
	PropAcceleration
	PropDamping
	PropAngularDamping
	PropRestitution
	PropFriction
	PropLifetime
	PropCollisionless
	PropCollisionMask
	PropDynamic
	PropCollisionSoundURL
	PropActionData

	// Cloning
	PropCloneable
	PropCloneLifetime
	PropCloneLimit
	PropCloneDynamic
	PropCloneAvatarEntity
	PropCloneOriginID

	// Scripts
	PropScript
	PropScriptTimestamp
	PropServerScripts

	// Certifiable properties
	PropItemName
	PropItemDescription
	PropItemCategories
	PropItemArtist
	PropItemLicense
	PropLimitedRun
	PropMarketplaceID
	PropEditionNumber
	PropEntityInstanceNumber
	PropCertificateID
	PropCertificateType
	PropStaticCertificateVersion

	// Local (parent-relative) values
	PropLocalPosition
	PropLocalRotation
	PropLocalVelocity
	PropLocalAngularVelocity
	PropLocalDimensions

	// Common across several types
	PropShapeType
	PropCompoundShapeURL
	PropColor
	PropAlpha

	// Pulse group
	PropPulseMin
	PropPulseMax
	PropPulsePeriod
	PropPulseColorMode
	PropPulseAlphaMode

	PropTextures

	// Shape
	PropShape

	// Model
	PropModelURL
	PropModelScale
	PropJointRotations
	PropJointTranslations
	PropRelayParentJoints
	PropGroupCulled
	PropBlendshapeCoefficients
	PropUseOriginalPivot

	// Animation group
	PropAnimationURL
	PropAnimationAllowTranslation
	PropAnimationFPS
	PropAnimationFrameIndex
	PropAnimationPlaying
	PropAnimationLoop
	PropAnimationFirstFrame
	PropAnimationLastFrame
	PropAnimationHold

	// Light
	PropIsSpotlight
	PropIntensity
	PropExponent
	PropCutoff
	PropFalloffRadius

	// Text
	PropText
	PropLineHeight
	PropTextColor
	PropTextAlpha
	PropBackgroundColor
	PropBackgroundAlpha
	PropLeftMargin
	PropRightMargin
	PropTopMargin
	PropBottomMargin
	PropUnlit
	PropFont
	PropTextEffect
	PropTextEffectColor
	PropTextEffectThickness
	PropTextAlignment

	// Zone: key light group
	PropKeyLightColor
	PropKeyLightIntensity
	PropKeyLightDirection
	PropKeyLightCastShadows
	PropKeyLightShadowBias
	PropKeyLightShadowMaxDistance

	// Zone: ambient light group
	PropAmbientLightIntensity
	PropAmbientLightURL

	// Zone: skybox group
	PropSkyboxColor
	PropSkyboxURL

	// Zone: haze group
	PropHazeRange
	PropHazeColor
	PropHazeGlareColor
	PropHazeEnableGlare
	PropHazeGlareAngle
	PropHazeAltitudeEffect
	PropHazeCeiling
	PropHazeBaseRef
	PropHazeBackgroundBlend
	PropHazeAttenuateKeyLight
	PropHazeKeyLightRange
	PropHazeKeyLightAltitude

	// Zone: bloom group
	PropBloomIntensity
	PropBloomThreshold
	PropBloomSize

	// Zone
	PropFlyingAllowed
	PropGhostingAllowed
	PropFilterURL
	PropKeyLightMode
	PropAmbientLightMode
	PropSkyboxMode
	PropHazeMode
	PropBloomMode
	PropAvatarPriority
	PropScreenshare

	// Zone: tonemapping group
	PropToneMappingCurve
	PropToneMappingExposure

	// Web
	PropSourceURL
	PropDPI
	PropScriptURL
	PropMaxFPS
	PropInputMode
	PropShowKeyboardFocusHighlight
	PropWebUseBackground
	PropUserAgent

	// Image
	PropImageURL
	PropEmissive
	PropKeepAspectRatio
	PropSubImage

	// Grid
	PropGridFollowCamera
	PropMajorGridEvery
	PropMinorGridEvery

	// Gizmo
	PropGizmoType

	// Ring group
	PropRingStartAngle
	PropRingEndAngle
	PropRingInnerRadius
	PropRingInnerStartColor
	PropRingInnerEndColor
	PropRingOuterStartColor
	PropRingOuterEndColor
	PropRingInnerStartAlpha
	PropRingInnerEndAlpha
	PropRingOuterStartAlpha
	PropRingOuterEndAlpha
	PropRingHasTickMarks
	PropRingMajorTickMarksAngle
	PropRingMinorTickMarksAngle
	PropRingMajorTickMarksLength
	PropRingMinorTickMarksLength
	PropRingMajorTickMarksColor
	PropRingMinorTickMarksColor

	// Material
	PropMaterialURL
	PropMaterialMappingMode
	PropMaterialPriority
	PropParentMaterialName
	PropMaterialMappingPos
	PropMaterialMappingScale
	PropMaterialMappingRot
	PropMaterialData
	PropMaterialRepeat

	// ParticleEffect
	PropMaxParticles
	PropParticleLifespan
	PropEmitRate
	PropEmitSpeed
	PropSpeedSpread
	PropEmitOrientation
	PropEmitDimensions
	PropEmitRadiusStart
	PropPolarStart
	PropPolarFinish
	PropAzimuthStart
	PropAzimuthFinish
	PropEmitAcceleration
	PropAccelerationSpread
	PropParticleRadius
	PropRadiusSpread
	PropRadiusStart
	PropRadiusFinish
	PropEmitterShouldTrail

	// PolyVox
	PropVoxelVolumeSize
	PropVoxelData
	PropVoxelSurfaceStyle
	PropXTextureURL
	PropYTextureURL
	PropZTextureURL
	PropXNNeighborID
	PropYNNeighborID
	PropZNNeighborID
	PropXPNeighborID
	PropYPNeighborID
	PropZPNeighborID

	// PolyLine
	PropLinePoints
	PropStrokeNormals
	PropStrokeColors
	PropIsUVModeStretch
	PropLineGlow
	PropLineFaceCamera

	// PropertyCodeCount is one past the last assigned code.
	PropertyCodeCount
)
