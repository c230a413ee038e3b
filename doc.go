// Package huffstream implements a static Huffman coder for byte streams.
// The code is built from the byte frequencies of the input and travels with
// the compressed data, so no side information is needed to decompress.
//
// A compressed stream is a sequence of bits, most significant bit first
// within each byte:
//
//     [32 bits]   MagicNumber
//     [tree]      preorder: 0 = internal node, 1 + 9-bit symbol = leaf
//     [body]      the codeword of each input byte, in order
//     [end]       the codeword of PseudoEOF
//
// The stream is zero-padded to a byte boundary; the padding is never read.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffstream

import (
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffstream")

// Library users see warnings and errors only until they configure a backend.
func init() {
	logging.SetLevel(logging.WARNING, "huffstream")
}
