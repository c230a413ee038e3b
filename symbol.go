package huffstream

// Symbol represents a symbol in the coder's alphabet: a byte value in
// [0, AlphabetSize), or PseudoEOF.  Negative symbols are not valid.
type Symbol int32

const (
	// AlphabetSize is the number of distinct byte values.
	AlphabetSize = 256

	// PseudoEOF is the sentinel Symbol which marks the end of the payload.
	// It never appears in the input; every tree contains it exactly once.
	PseudoEOF = Symbol(AlphabetSize)

	// NumSymbols is the size of the effective alphabet, sentinel included.
	NumSymbols = AlphabetSize + 1
)

const (
	// BitsPerWord is the width of one payload chunk.
	BitsPerWord = 8

	// BitsPerInt is the width of the magic number.
	BitsPerInt = 32

	// SymbolBits is the width of a leaf symbol in the header.  It is wide
	// enough to hold every value in [0, PseudoEOF].
	SymbolBits = 9
)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff s is a byte value or PseudoEOF.
func (s Symbol) IsValid() bool {
	return s >= 0 && s < NumSymbols
}

// isByte returns true iff s is a countable byte value.
func (s Symbol) isByte() bool {
	return s >= 0 && s < AlphabetSize
}
