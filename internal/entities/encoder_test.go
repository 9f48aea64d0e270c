package entities

import (
	"bytes"
	"encoding/hex"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/vistaverse/vista/internal/octree"
)

var (
	testEntityID = uuid.UUID{
		0xb7, 0x1d, 0x53, 0x80, 0x2f, 0xcc, 0x48, 0x33,
		0x93, 0xa7, 0x9a, 0x49, 0x67, 0x01, 0x75, 0x87,
	}
	testEditorID = uuid.MustParse("a82f40b6-ee89-46cc-b504-02b88d72a546")

	testLastEdited = uint64(1688896885851574)
)

// colorEditProperties is the canonical Box color edit used across the
// encoder tests: color plus lastEditedBy.
func colorEditProperties() *EntityProperties {
	editor := testEditorID
	return &EntityProperties{
		EntityType:   EntityTypeBox,
		Color:        &octree.Color{R: 240, G: 37, B: 148},
		LastEditedBy: &editor,
	}
}

// TestGetChangedProperties verifies only supplied fields are flagged.
func TestGetChangedProperties(t *testing.T) {
	flags := GetChangedProperties(colorEditProperties())

	if !flags.GetHasProperty(PropLastEditedBy) || !flags.GetHasProperty(PropColor) {
		t.Fatalf("expected flags %d and %d set", PropLastEditedBy, PropColor)
	}
	flags.SetHasProperty(PropLastEditedBy, false)
	flags.SetHasProperty(PropColor, false)
	if !flags.IsEmpty() {
		t.Errorf("unexpected extra flags set")
	}
}

// TestEncodeEditPacketFullFit pins the exact wire bytes of a color edit
// that fits completely.
func TestEncodeEditPacketFullFit(t *testing.T) {
	buf := make([]byte, 1492)

	n, state, didntFit, err := EncodeEditPacket(buf, testEntityID, testLastEdited, colorEditProperties())
	if err != nil {
		t.Fatalf("EncodeEditPacket failed: %v", err)
	}
	if state != octree.Completed {
		t.Fatalf("state = %s, want COMPLETED", state)
	}
	if !didntFit.IsEmpty() {
		t.Fatalf("didntFit not empty")
	}

	want, _ := hex.DecodeString(
		"00b685f1f20a000600" + // octcode + lastEdited (LE)
			"b71d53802fcc483393a79a4967017587" + // entity UUID (BE)
			"4000" + // entity type Box, update delta 0
			"fff00002000000000000000040" + // property flags {lastEditedBy, color}
			"1000a82f40b6ee8946ccb50402b88d72a546" + // lastEditedBy
			"f02594") // color
	if !bytes.Equal(buf[:n], want) {
		t.Errorf("wire bytes =\n%x\nwant\n%x", buf[:n], want)
	}
}

// TestEncodeEditPacketPartialFit verifies the in-place flag clearing
// when a larger field does not fit but a later smaller one does.
func TestEncodeEditPacketPartialFit(t *testing.T) {
	// Header (27) + flag block (13) + color (3); no room for the
	// 18-byte lastEditedBy field.
	buf := make([]byte, 43)

	n, state, didntFit, err := EncodeEditPacket(buf, testEntityID, testLastEdited, colorEditProperties())
	if err != nil {
		t.Fatalf("EncodeEditPacket failed: %v", err)
	}
	if state != octree.Partial {
		t.Fatalf("state = %s, want PARTIAL", state)
	}
	if !didntFit.GetHasProperty(PropLastEditedBy) {
		t.Errorf("lastEditedBy missing from didntFit")
	}
	if didntFit.GetHasProperty(PropColor) {
		t.Errorf("color wrongly in didntFit")
	}

	want, _ := hex.DecodeString(
		"00b685f1f20a000600" +
			"b71d53802fcc483393a79a4967017587" +
			"4000" +
			"fff00000000000000000000040" + // only the color flag survives
			"f02594")
	if !bytes.Equal(buf[:n], want) {
		t.Errorf("wire bytes =\n%x\nwant\n%x", buf[:n], want)
	}
}

// TestEncodeEditPacketNoFit verifies the NONE outcome: nothing fits
// after the flag block and the buffer position stays at the checkpoint.
func TestEncodeEditPacketNoFit(t *testing.T) {
	// Header (27) + flag block (13) + two spare bytes: not even the
	// 3-byte color fits.
	buf := make([]byte, 42)

	n, state, didntFit, err := EncodeEditPacket(buf, testEntityID, testLastEdited, colorEditProperties())
	if err != nil {
		t.Fatalf("EncodeEditPacket failed: %v", err)
	}
	if state != octree.None {
		t.Fatalf("state = %s, want NONE", state)
	}
	if n != 40 {
		t.Errorf("returned length = %d, want checkpoint 40", n)
	}
	if !didntFit.GetHasProperty(PropLastEditedBy) || !didntFit.GetHasProperty(PropColor) {
		t.Errorf("didntFit missing requested flags")
	}
	for _, b := range buf[40:] {
		if b != 0 {
			t.Errorf("bytes past the checkpoint were touched: %x", buf[40:])
		}
	}
}

// TestEncodeEditPacketIdempotent verifies two encodes of the same inputs
// into fresh buffers are byte-identical.
func TestEncodeEditPacketIdempotent(t *testing.T) {
	props := colorEditProperties()

	buf1 := make([]byte, 1492)
	buf2 := make([]byte, 1492)
	n1, _, _, err1 := EncodeEditPacket(buf1, testEntityID, testLastEdited, props)
	n2, _, _, err2 := EncodeEditPacket(buf2, testEntityID, testLastEdited, props)
	if err1 != nil || err2 != nil {
		t.Fatalf("encode failed: %v / %v", err1, err2)
	}
	if n1 != n2 || !bytes.Equal(buf1[:n1], buf2[:n2]) {
		t.Errorf("encodes differ: %x vs %x", buf1[:n1], buf2[:n2])
	}
}

// TestEncodeDecodeRoundTrip verifies the decoder reverses the encoder
// for a richer property bag spanning the common and model blocks.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	name := "lamp"
	visible := true
	density := float32(1000)
	position := octree.Vec3{X: 1, Y: 2.5, Z: -3}
	rotations := []octree.Quat{{W: 1}, {W: 1}}
	translations := []octree.Vec3{{X: 0.1, Y: 0.2, Z: 0.3}}
	modelURL := "https://assets.example.com/lamp.glb"
	fps := float32(30)

	props := &EntityProperties{
		EntityType:        EntityTypeModel,
		Name:              &name,
		Visible:           &visible,
		Density:           &density,
		Position:          &position,
		ModelURL:          &modelURL,
		JointRotations:    &rotations,
		JointTranslations: &translations,
		Animation:         &AnimationProperties{FPS: &fps},
	}

	buf := make([]byte, 1492)
	n, state, _, err := EncodeEditPacket(buf, testEntityID, testLastEdited, props)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if state != octree.Completed {
		t.Fatalf("state = %s, want COMPLETED", state)
	}

	edit, read, err := DecodeEditPacket(buf[:n])
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if read != n {
		t.Errorf("decoder consumed %d bytes, want %d", read, n)
	}
	if edit.EntityID != testEntityID {
		t.Errorf("entity ID = %s", edit.EntityID)
	}
	if edit.LastEdited != testLastEdited {
		t.Errorf("lastEdited = %d", edit.LastEdited)
	}

	got := edit.Properties
	if got.EntityType != EntityTypeModel {
		t.Fatalf("entity type = %s", got.EntityType)
	}
	if got.Name == nil || *got.Name != name {
		t.Errorf("name lost")
	}
	if got.Visible == nil || !*got.Visible {
		t.Errorf("visible lost")
	}
	if got.Density == nil || *got.Density != density {
		t.Errorf("density lost")
	}
	if got.Position == nil || *got.Position != position {
		t.Errorf("position lost")
	}
	if got.ModelURL == nil || *got.ModelURL != modelURL {
		t.Errorf("model URL lost")
	}
	if got.JointRotations == nil || len(*got.JointRotations) != 2 {
		t.Errorf("joint rotations lost")
	}
	if got.JointTranslations == nil || len(*got.JointTranslations) != 1 {
		t.Errorf("joint translations lost")
	}
	if got.Animation == nil || got.Animation.FPS == nil || *got.Animation.FPS != fps {
		t.Errorf("animation FPS lost")
	}
	if got.Animation != nil && got.Animation.Playing != nil {
		t.Errorf("unrequested animation field materialized")
	}
}

// TestEncodeDecodeZoneGroups verifies the nested zone groups survive a
// roundtrip.
func TestEncodeDecodeZoneGroups(t *testing.T) {
	intensity := float32(0.8)
	skyboxURL := "https://assets.example.com/sky.jpg"
	hazeRange := float32(900)
	flying := true

	props := &EntityProperties{
		EntityType:    EntityTypeZone,
		KeyLight:      &KeyLightProperties{Intensity: &intensity},
		Skybox:        &SkyboxProperties{URL: &skyboxURL},
		Haze:          &HazeProperties{Range: &hazeRange},
		FlyingAllowed: &flying,
	}

	buf := make([]byte, 1492)
	n, state, _, err := EncodeEditPacket(buf, testEntityID, testLastEdited, props)
	if err != nil || state != octree.Completed {
		t.Fatalf("encode failed: state=%v err=%v", state, err)
	}

	edit, _, err := DecodeEditPacket(buf[:n])
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	got := edit.Properties
	if got.KeyLight == nil || got.KeyLight.Intensity == nil || *got.KeyLight.Intensity != intensity {
		t.Errorf("key light intensity lost")
	}
	if got.Skybox == nil || got.Skybox.URL == nil || *got.Skybox.URL != skyboxURL {
		t.Errorf("skybox URL lost")
	}
	if got.Haze == nil || got.Haze.Range == nil || *got.Haze.Range != hazeRange {
		t.Errorf("haze range lost")
	}
	if got.FlyingAllowed == nil || !*got.FlyingAllowed {
		t.Errorf("flying allowed lost")
	}
	if got.Bloom != nil {
		t.Errorf("unrequested bloom group materialized")
	}
}

// TestEncodeInvalidValueDropsProperty verifies a validation failure
// drops only the bad property and keeps the rest of the edit intact.
func TestEncodeInvalidValueDropsProperty(t *testing.T) {
	props := colorEditProperties()
	huge := octree.Vec3{X: float32(math.Inf(1))} // rejected by the validator
	props.Position = &huge

	buf := make([]byte, 1492)
	n, state, didntFit, err := EncodeEditPacket(buf, testEntityID, testLastEdited, props)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if state != octree.Completed {
		t.Fatalf("state = %s, want COMPLETED (invalid is not a fit failure)", state)
	}
	if didntFit.GetHasProperty(PropPosition) {
		t.Errorf("invalid property counted as didntFit")
	}

	edit, _, err := DecodeEditPacket(buf[:n])
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if edit.Properties.Position != nil {
		t.Errorf("invalid position was written anyway")
	}
	if edit.Properties.Color == nil || edit.Properties.LastEditedBy == nil {
		t.Errorf("valid properties lost alongside the invalid one")
	}
}
