package protocol

import (
	"bytes"
	"testing"
)

// TestByteCountCodedKnownEncodings pins the wire form of the small
// values that appear in entity-edit headers.
func TestByteCountCodedKnownEncodings(t *testing.T) {
	testCases := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x40}}, // EntityType Box
		{2, []byte{0x20}},
		{3, []byte{0x60}},
	}

	for _, tc := range testCases {
		buf := make([]byte, 8)
		n := EncodeByteCountCoded(buf, tc.value)
		if n != len(tc.want) {
			t.Errorf("value %d: wrote %d bytes, want %d", tc.value, n, len(tc.want))
			continue
		}
		if !bytes.Equal(buf[:n], tc.want) {
			t.Errorf("value %d: encoded %x, want %x", tc.value, buf[:n], tc.want)
		}
	}
}

// TestByteCountCodedRoundTrip verifies encode/decode identity across
// size boundaries.
func TestByteCountCodedRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 16, 127, 128, 255, 300, 16383, 16384, 1 << 20, 1<<32 - 1, 1 << 40}

	for _, v := range values {
		size := ByteCountCodedSize(v)
		buf := make([]byte, size)
		n := EncodeByteCountCoded(buf, v)
		if n != size {
			t.Errorf("value %d: wrote %d bytes, want %d", v, n, size)
			continue
		}

		got, read, err := DecodeByteCountCoded(buf)
		if err != nil {
			t.Errorf("value %d: decode failed: %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("roundtrip = %d, want %d", got, v)
		}
		if read != size {
			t.Errorf("value %d: read %d bytes, want %d", v, read, size)
		}
	}
}

// TestByteCountCodedShortBuffer verifies encode refuses buffers smaller
// than the coded size.
func TestByteCountCodedShortBuffer(t *testing.T) {
	if n := EncodeByteCountCoded(nil, 1); n != 0 {
		t.Errorf("encode into nil buffer = %d, want 0", n)
	}
	if _, _, err := DecodeByteCountCoded(nil); err == nil {
		t.Errorf("decode of empty buffer succeeded")
	}
}
