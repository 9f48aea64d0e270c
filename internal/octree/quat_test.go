package octree

import (
	"math"
	"testing"
)

// canonical returns q with its largest-magnitude component non-negative,
// matching the packer's normalization (q and -q are the same rotation).
func canonical(q Quat) Quat {
	c := [4]float32{q.X, q.Y, q.Z, q.W}
	largest := 0
	for i := 1; i < 4; i++ {
		if math.Abs(float64(c[i])) > math.Abs(float64(c[largest])) {
			largest = i
		}
	}
	if c[largest] < 0 {
		return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
	}
	return q
}

func normalize(q Quat) Quat {
	n := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	return Quat{X: q.X / n, Y: q.Y / n, Z: q.Z / n, W: q.W / n}
}

// TestPackUnpackPrecision verifies every component survives the 15-bit
// packing to within 2^-14.
func TestPackUnpackPrecision(t *testing.T) {
	const tolerance = 1.0 / 16384.0

	testCases := []struct {
		name string
		q    Quat
	}{
		{"identity", Quat{W: 1}},
		{"x axis quarter turn", normalize(Quat{X: 0.7071, W: 0.7071})},
		{"y axis", normalize(Quat{Y: 0.7071, W: 0.7071})},
		{"negative largest", normalize(Quat{Z: 0.2, W: -0.9})},
		{"arbitrary", normalize(Quat{X: 0.1, Y: -0.3, Z: 0.5, W: 0.7})},
		{"near-even components", normalize(Quat{X: 0.5, Y: 0.5, Z: 0.5, W: 0.5})},
		{"largest is x", normalize(Quat{X: -0.9, Y: 0.1, Z: 0.2, W: 0.3})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := UnpackOrientationQuat(PackOrientationQuat(tc.q))
			want := canonical(tc.q)

			diffs := [4]float64{
				math.Abs(float64(got.X - want.X)),
				math.Abs(float64(got.Y - want.Y)),
				math.Abs(float64(got.Z - want.Z)),
				math.Abs(float64(got.W - want.W)),
			}
			for i, d := range diffs {
				if d > tolerance {
					t.Errorf("component %d error %g exceeds %g (got %+v, want %+v)",
						i, d, tolerance, got, want)
				}
			}
		})
	}
}

// TestPackStable verifies packing the same quaternion twice yields the
// same word, and unpack→pack is a fixed point.
func TestPackStable(t *testing.T) {
	q := normalize(Quat{X: 0.3, Y: -0.4, Z: 0.5, W: 0.6})

	w1 := PackOrientationQuat(q)
	w2 := PackOrientationQuat(q)
	if w1 != w2 {
		t.Fatalf("packing not deterministic: %#x vs %#x", w1, w2)
	}

	w3 := PackOrientationQuat(UnpackOrientationQuat(w1))
	if w3 != w1 {
		t.Errorf("unpack/pack not a fixed point: %#x vs %#x", w3, w1)
	}
}
