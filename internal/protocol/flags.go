package protocol

import (
	"fmt"
)

// PropertyFlags is an ordered set over a closed enumeration of property
// identifiers, doubling as the wire form that prefixes entity property
// streams. Wire layout (big-endian bit order): the first size-1 bits are
// 1s counting the total byte length, terminated by a single 0 bit; the
// remaining contiguous bits are flag presence bits in ascending
// enumeration order.
type PropertyFlags struct {
	bits []uint64
}

// SetHasProperty adds or removes a flag. Negative flags are ignored.
func (f *PropertyFlags) SetHasProperty(flag int, has bool) {
	if flag < 0 {
		return
	}
	word, bit := flag/64, uint(flag%64)
	if has {
		for len(f.bits) <= word {
			f.bits = append(f.bits, 0)
		}
		f.bits[word] |= 1 << bit
		return
	}
	if word < len(f.bits) {
		f.bits[word] &^= 1 << bit
	}
}

// GetHasProperty reports whether a flag is in the set.
func (f *PropertyFlags) GetHasProperty(flag int) bool {
	if flag < 0 {
		return false
	}
	word, bit := flag/64, uint(flag%64)
	return word < len(f.bits) && f.bits[word]&(1<<bit) != 0
}

// IsEmpty reports whether no flag is set.
func (f *PropertyFlags) IsEmpty() bool {
	for _, w := range f.bits {
		if w != 0 {
			return false
		}
	}
	return true
}

// MaxFlag returns the highest set flag, or -1 when the set is empty.
func (f *PropertyFlags) MaxFlag() int {
	for word := len(f.bits) - 1; word >= 0; word-- {
		w := f.bits[word]
		if w == 0 {
			continue
		}
		for bit := 63; bit >= 0; bit-- {
			if w&(1<<uint(bit)) != 0 {
				return word*64 + bit
			}
		}
	}
	return -1
}

// Or adds every flag of other to the set.
func (f *PropertyFlags) Or(other *PropertyFlags) {
	for len(f.bits) < len(other.bits) {
		f.bits = append(f.bits, 0)
	}
	for i, w := range other.bits {
		f.bits[i] |= w
	}
}

// AndNot removes every flag of other from the set.
func (f *PropertyFlags) AndNot(other *PropertyFlags) {
	for i := 0; i < len(f.bits) && i < len(other.bits); i++ {
		f.bits[i] &^= other.bits[i]
	}
}

// Intersects reports whether the two sets share any flag.
func (f *PropertyFlags) Intersects(other *PropertyFlags) bool {
	for i := 0; i < len(f.bits) && i < len(other.bits); i++ {
		if f.bits[i]&other.bits[i] != 0 {
			return true
		}
	}
	return false
}

// Equal reports whether both sets contain exactly the same flags.
func (f *PropertyFlags) Equal(other *PropertyFlags) bool {
	longest := f.bits
	shortest := other.bits
	if len(shortest) > len(longest) {
		longest, shortest = shortest, longest
	}
	for i, w := range longest {
		var o uint64
		if i < len(shortest) {
			o = shortest[i]
		}
		if w != o {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (f *PropertyFlags) Clone() *PropertyFlags {
	c := &PropertyFlags{bits: make([]uint64, len(f.bits))}
	copy(c.bits, f.bits)
	return c
}

// EncodedSize returns the number of bytes Encode will write: the smallest
// size whose payload bits can hold every flag up to MaxFlag. The empty set
// encodes as a single 0x00 byte.
func (f *PropertyFlags) EncodedSize() int {
	// size bytes provide 8*size bits; size of them are the length header.
	return f.MaxFlag()/7 + 1
}

// Encode writes the set into buf at its natural EncodedSize.
// Returns the bytes written, or 0 when buf is too small.
func (f *PropertyFlags) Encode(buf []byte) int {
	return f.EncodeWithSize(buf, f.EncodedSize())
}

// EncodeWithSize writes the set into buf using a fixed block length. The
// caller may pick a size larger than EncodedSize to reserve room, letting
// individual bits be cleared in place later without moving the payload
// that follows. Returns the bytes written, or 0 when buf is too small or
// the set does not fit in size bytes.
func (f *PropertyFlags) EncodeWithSize(buf []byte, size int) int {
	if size < 1 || len(buf) < size {
		return 0
	}
	if f.MaxFlag() >= 8*size-size {
		return 0
	}

	for i := 0; i < size; i++ {
		buf[i] = 0
	}
	// Length header: size-1 one bits, then the terminating zero bit.
	for bit := 0; bit < size-1; bit++ {
		buf[bit/8] |= 0x80 >> uint(bit%8)
	}
	// Flag f lands at stream bit size+f.
	for flag := 0; flag <= f.MaxFlag(); flag++ {
		if !f.GetHasProperty(flag) {
			continue
		}
		bit := size + flag
		buf[bit/8] |= 0x80 >> uint(bit%8)
	}
	return size
}

// DecodePropertyFlags reads an encoded flag set from the front of buf and
// returns it with the number of bytes consumed. Trailing bytes beyond the
// encoded length are left untouched.
func DecodePropertyFlags(buf []byte) (*PropertyFlags, int, error) {
	if len(buf) == 0 {
		return nil, 0, fmt.Errorf("property flags: empty buffer")
	}

	// Count leading 1 bits; the block is one byte per header bit.
	size := 1
	for bit := 0; ; bit++ {
		if bit/8 >= len(buf) {
			return nil, 0, fmt.Errorf("property flags: unterminated length header")
		}
		if buf[bit/8]&(0x80>>uint(bit%8)) == 0 {
			break
		}
		size++
	}
	if len(buf) < size {
		return nil, 0, fmt.Errorf("property flags: need %d bytes, have %d", size, len(buf))
	}

	flags := &PropertyFlags{}
	for bit := size; bit < 8*size; bit++ {
		if buf[bit/8]&(0x80>>uint(bit%8)) != 0 {
			flags.SetHasProperty(bit-size, true)
		}
	}
	return flags, size, nil
}
