package protocol

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func flagsOf(ids ...int) *PropertyFlags {
	f := &PropertyFlags{}
	for _, id := range ids {
		f.SetHasProperty(id, true)
	}
	return f
}

// TestEncodeKnownVector verifies the exact wire image of the flag set
// {17, 84} used by entity color edits: a 13-byte block with a 12-one
// length header.
func TestEncodeKnownVector(t *testing.T) {
	f := flagsOf(17, 84)

	if got := f.EncodedSize(); got != 13 {
		t.Fatalf("EncodedSize = %d, want 13", got)
	}

	buf := make([]byte, 13)
	if n := f.Encode(buf); n != 13 {
		t.Fatalf("Encode = %d, want 13", n)
	}

	want, _ := hex.DecodeString("fff00002000000000000000040")
	if !bytes.Equal(buf, want) {
		t.Errorf("encoded = %x, want %x", buf, want)
	}
}

// TestEncodeDecodeIdentity verifies decode∘encode is the identity for a
// spread of flag sets.
func TestEncodeDecodeIdentity(t *testing.T) {
	testCases := []struct {
		name string
		set  *PropertyFlags
	}{
		{"empty", flagsOf()},
		{"single low flag", flagsOf(0)},
		{"single mid flag", flagsOf(17)},
		{"adjacent flags", flagsOf(5, 6, 7)},
		{"color edit set", flagsOf(17, 84)},
		{"high flag", flagsOf(230)},
		{"dense set", flagsOf(0, 1, 2, 12, 13, 14, 84, 85, 91, 200)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, tc.set.EncodedSize())
			n := tc.set.Encode(buf)
			if n != len(buf) {
				t.Fatalf("Encode = %d, want %d", n, len(buf))
			}

			decoded, read, err := DecodePropertyFlags(buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if read != n {
				t.Errorf("bytes read = %d, want %d", read, n)
			}
			if !decoded.Equal(tc.set) {
				t.Errorf("decoded set differs from original")
			}
		})
	}
}

// TestDecodeToleratesTrailingZeros verifies the reader consumes only the
// encoded block and ignores padding after it.
func TestDecodeToleratesTrailingZeros(t *testing.T) {
	f := flagsOf(17, 84)
	buf := make([]byte, f.EncodedSize()+8)
	n := f.Encode(buf)

	decoded, read, err := DecodePropertyFlags(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if read != n {
		t.Errorf("bytes read = %d, want %d", read, n)
	}
	if !decoded.Equal(f) {
		t.Errorf("decoded set differs from original")
	}
}

// TestEncodeWithSizeClearsInPlace verifies a bit can be cleared and the
// block re-encoded at its reserved length without disturbing layout.
func TestEncodeWithSizeClearsInPlace(t *testing.T) {
	f := flagsOf(17, 84)
	size := f.EncodedSize()
	buf := make([]byte, size)
	f.Encode(buf)

	f.SetHasProperty(17, false)
	if n := f.EncodeWithSize(buf, size); n != size {
		t.Fatalf("EncodeWithSize = %d, want %d", n, size)
	}

	want, _ := hex.DecodeString("fff00000000000000000000040")
	if !bytes.Equal(buf, want) {
		t.Errorf("re-encoded = %x, want %x", buf, want)
	}

	decoded, _, err := DecodePropertyFlags(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.GetHasProperty(17) || !decoded.GetHasProperty(84) {
		t.Errorf("cleared bit survived or kept bit lost")
	}
}

// TestSetOperations exercises the union/difference/emptiness semantics.
func TestSetOperations(t *testing.T) {
	a := flagsOf(1, 5, 84)
	b := flagsOf(5, 17)

	a.Or(b)
	for _, id := range []int{1, 5, 17, 84} {
		if !a.GetHasProperty(id) {
			t.Errorf("after Or, flag %d missing", id)
		}
	}

	a.AndNot(b)
	if a.GetHasProperty(5) || a.GetHasProperty(17) {
		t.Errorf("after AndNot, removed flags still present")
	}
	if !a.GetHasProperty(1) || !a.GetHasProperty(84) {
		t.Errorf("after AndNot, kept flags lost")
	}

	if !flagsOf().IsEmpty() {
		t.Errorf("fresh set not empty")
	}
	if a.IsEmpty() {
		t.Errorf("non-empty set reported empty")
	}
	if got := a.MaxFlag(); got != 84 {
		t.Errorf("MaxFlag = %d, want 84", got)
	}

	cleared := flagsOf(3)
	cleared.SetHasProperty(3, false)
	if !cleared.IsEmpty() {
		t.Errorf("set with all flags cleared not empty")
	}
	if got := cleared.MaxFlag(); got != -1 {
		t.Errorf("MaxFlag of empty = %d, want -1", got)
	}
}

// TestIntersects verifies the disjointness check used by the encoder's
// propertiesToWrite/propertiesWritten invariant.
func TestIntersects(t *testing.T) {
	a := flagsOf(17, 84)
	b := flagsOf(84)
	c := flagsOf(3)

	if !a.Intersects(b) {
		t.Errorf("overlapping sets reported disjoint")
	}
	if a.Intersects(c) {
		t.Errorf("disjoint sets reported overlapping")
	}
}

// TestEncodeBufferTooSmall verifies Encode reports 0 instead of writing
// past the buffer.
func TestEncodeBufferTooSmall(t *testing.T) {
	f := flagsOf(84)
	buf := make([]byte, f.EncodedSize()-1)
	if n := f.Encode(buf); n != 0 {
		t.Errorf("Encode into short buffer = %d, want 0", n)
	}
}
