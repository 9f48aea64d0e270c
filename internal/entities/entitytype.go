// Package entities implements the strongly-typed entity property bag and
// the flag-driven encoder/decoder for entity-edit packet bodies.
package entities

// EntityType discriminates the per-type property block that follows the
// common block in entity packets. Values are wire truth — append only.
type EntityType uint32

const (
	EntityTypeUnknown EntityType = iota
	EntityTypeBox
	EntityTypeSphere
	EntityTypeShape
	EntityTypeModel
	EntityTypeText
	EntityTypeImage
	EntityTypeWeb
	EntityTypeParticleEffect
	EntityTypeLine
	EntityTypePolyLine
	EntityTypePolyVox
	EntityTypeGrid
	EntityTypeGizmo
	EntityTypeLight
	EntityTypeZone
	EntityTypeMaterial
)

// String returns the entity type name for logs.
func (t EntityType) String() string {
	names := [...]string{
		"Unknown", "Box", "Sphere", "Shape", "Model", "Text", "Image",
		"Web", "ParticleEffect", "Line", "PolyLine", "PolyVox", "Grid",
		"Gizmo", "Light", "Zone", "Material",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}
