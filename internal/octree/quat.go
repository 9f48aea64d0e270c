package octree

import "math"

// Packed quaternion layout inside a uint64, high bits first:
// [largest-component index : 2][c0 : 15][c1 : 15][c2 : 15][unused : 17].
// The three stored components are the non-largest ones in x,y,z,w order,
// scaled from ±1/√2 to ±1 and offset into 15 unsigned bits. The largest
// component is recovered from unit length and is canonically non-negative
// (q and -q describe the same rotation).

const quatComponentSteps = 32766

// PackOrientationQuat packs a unit quaternion into its 8-byte wire form.
func PackOrientationQuat(q Quat) uint64 {
	components := [4]float64{float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)}

	largest := 0
	for i := 1; i < 4; i++ {
		if math.Abs(components[i]) > math.Abs(components[largest]) {
			largest = i
		}
	}
	if components[largest] < 0 {
		for i := range components {
			components[i] = -components[i]
		}
	}

	word := uint64(largest) << 62
	shift := 47
	for i, c := range components {
		if i == largest {
			continue
		}
		scaled := c * math.Sqrt2
		if scaled > 1 {
			scaled = 1
		} else if scaled < -1 {
			scaled = -1
		}
		stored := uint64(math.Round((scaled + 1) / 2 * quatComponentSteps))
		word |= stored << uint(shift)
		shift -= 15
	}
	return word
}

// UnpackOrientationQuat reverses PackOrientationQuat. The result is unit
// length with a non-negative largest component.
func UnpackOrientationQuat(word uint64) Quat {
	largest := int(word >> 62)

	var components [4]float64
	shift := 47
	sumSquares := 0.0
	for i := range components {
		if i == largest {
			continue
		}
		stored := (word >> uint(shift)) & 0x7FFF
		c := (float64(stored)/quatComponentSteps*2 - 1) / math.Sqrt2
		components[i] = c
		sumSquares += c * c
		shift -= 15
	}
	if sumSquares < 1 {
		components[largest] = math.Sqrt(1 - sumSquares)
	}

	return Quat{
		X: float32(components[0]),
		Y: float32(components[1]),
		Z: float32(components[2]),
		W: float32(components[3]),
	}
}
