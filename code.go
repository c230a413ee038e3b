package huffstream

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size int

	// Bits holds the actual values of the bits, packed most significant
	// bit first.  Bits past Size are always zero.
	Bits []byte
}

// MakeCode is a convenience function that constructs a Code from the low
// size bits of bits.  The most significant of those is the first bit.
func MakeCode(size int, bits uint64) Code {
	assert.Assertf(size >= 0 && size <= 64, "size %d out of range [0, 64]", size)
	var hc Code
	for i := size - 1; i >= 0; i-- {
		hc = hc.Append(uint(bits>>uint(i)) & 1)
	}
	return hc
}

// Append returns a new Code consisting of this Code followed by one more
// bit.  The receiver is not modified and the two never share storage.
func (hc Code) Append(bit uint) Code {
	size := hc.Size + 1
	packed := make([]byte, (size+7)/8)
	copy(packed, hc.Bits)
	if bit != 0 {
		packed[hc.Size/8] |= 0x80 >> uint(hc.Size%8)
	}
	return Code{Size: size, Bits: packed}
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i int) uint {
	assert.Assertf(i >= 0 && i < hc.Size, "bit index %d out of range [0, %d)", i, hc.Size)
	return uint(hc.Bits[i/8]>>uint(7-i%8)) & 1
}

// HasPrefix returns true iff the first p.Size bits of this Code are p.
func (hc Code) HasPrefix(p Code) bool {
	if p.Size > hc.Size {
		return false
	}
	for i := 0; i < p.Size; i++ {
		if hc.Bit(i) != p.Bit(i) {
			return false
		}
	}
	return true
}

// Equal returns true iff both Codes hold the same bits.
func (hc Code) Equal(other Code) bool {
	return hc.Size == other.Size && bytes.Equal(hc.Bits[:(hc.Size+7)/8], other.Bits[:(other.Size+7)/8])
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.bitString())
}

func (hc Code) bitString() string {
	buf := make([]byte, hc.Size)
	for i := range buf {
		buf[i] = '0' + byte(hc.Bit(i))
	}
	return string(buf)
}

var _ fmt.Stringer = Code{}

// writeCode emits the bits of hc in order, a whole byte at a time where
// possible.
func writeCode(w BitWriter, hc Code) error {
	whole := hc.Size / 8
	for i := 0; i < whole; i++ {
		if err := w.WriteBits(uint64(hc.Bits[i]), 8); err != nil {
			return err
		}
	}
	if rest := hc.Size % 8; rest != 0 {
		return w.WriteBits(uint64(hc.Bits[whole]>>uint(8-rest)), uint8(rest))
	}
	return nil
}
