package huffstream

import (
	"bytes"
	"math/rand"

	"github.com/icza/bitio"
)

const testString = "teststring"

func bitReaderFor(s string) *bitio.Reader {
	return bitio.NewReader(bytes.NewReader([]byte(s)))
}

func makeTestData(n int) []byte {
	b := make([]byte, n)
	r := rand.New(rand.NewSource(1))
	if n > 0 {
		_, _ = r.Read(b)
	}
	return b
}

func makeTestEncoder(s string) Encoder {
	var e Encoder
	if err := e.Init(bitReaderFor(s)); err != nil {
		panic(err)
	}
	return e
}
