package huffstream

import (
	"github.com/pkg/errors"
)

// FrequencyTable counts the occurrences of each byte value in a stream.
//
// The zero value is an empty table ready for use.  PseudoEOF is never
// counted; BuildTree injects it.
type FrequencyTable struct {
	counts [AlphabetSize]uint64
}

// Count returns the number of occurrences recorded for symbol.
func (ft *FrequencyTable) Count(symbol Symbol) (uint64, error) {
	if err := checkByte(symbol); err != nil {
		return 0, err
	}
	return ft.counts[symbol], nil
}

// CountAll consumes r to the end, one BitsPerWord chunk at a time, adding
// each chunk to the table.  It returns the number of chunks read.
func (ft *FrequencyTable) CountAll(r BitReader) (int64, error) {
	var n int64
	for {
		chunk, err := r.ReadBits(BitsPerWord)
		if err != nil {
			if isEOF(err) {
				return n, nil
			}
			return n, errors.Wrap(err, "huffstream: failed to read input")
		}
		ft.counts[chunk]++
		n++
	}
}

// Add records one more occurrence of symbol.
func (ft *FrequencyTable) Add(symbol Symbol) error {
	if err := checkByte(symbol); err != nil {
		return err
	}
	ft.counts[symbol]++
	return nil
}

// Set overwrites the count for symbol.
func (ft *FrequencyTable) Set(symbol Symbol, value uint64) error {
	if err := checkByte(symbol); err != nil {
		return err
	}
	ft.counts[symbol] = value
	return nil
}

// Clear resets every count to zero.
func (ft *FrequencyTable) Clear() {
	ft.counts = [AlphabetSize]uint64{}
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, c := range ft.counts {
		sum += c
	}
	return sum
}

// Sparse returns the nonzero counts.
func (ft *FrequencyTable) Sparse() map[Symbol]uint64 {
	out := make(map[Symbol]uint64)
	for symbol, c := range ft.counts {
		if c != 0 {
			out[Symbol(symbol)] = c
		}
	}
	return out
}

// Symbols lists the symbols with nonzero counts, in ascending order.
func (ft *FrequencyTable) Symbols() []Symbol {
	var out []Symbol
	for symbol, c := range ft.counts {
		if c != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

func checkByte(symbol Symbol) error {
	if !symbol.isByte() {
		return errors.Wrapf(ErrInvalidArgument, "symbol %d out of range [0, %d)", symbol, AlphabetSize)
	}
	return nil
}
