package huffstream

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func roundTrip(t *testing.T, data []byte) {
	t.Helper()
	dir := t.TempDir()
	src := writeTestFile(t, dir, "in", data)
	packed := filepath.Join(dir, "in.huf")
	unpacked := filepath.Join(dir, "out")

	written, err := Compress(src, packed, true)
	require.NoError(t, err)
	info, err := os.Stat(packed)
	require.NoError(t, err)
	require.Equal(t, (written+7)/8, info.Size())

	n, err := Decompress(packed, unpacked)
	require.NoError(t, err)
	require.Equal(t, int64(8*len(data)), n)

	actual, err := os.ReadFile(unpacked)
	require.NoError(t, err)
	require.True(t, bytes.Equal(data, actual), "decompressed data differs from original")
}

func TestRoundTrip(t *testing.T) {
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	testData := map[string][]byte{
		"single":      []byte("a"),
		"pair":        []byte("ab"),
		"teststring":  []byte(testString),
		"mississippi": []byte("mississippi"),
		"zeros":       make([]byte, 1000),
		"all-bytes":   allBytes,
		"text":        []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 50)),
		"random":      makeTestData(10000),
	}
	for name, data := range testData {
		data := data
		t.Run(name, func(t *testing.T) {
			roundTrip(t, data)
		})
	}
}

func TestCompress_TestString(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "in", []byte(testString))
	packed := filepath.Join(dir, "in.huf")

	n, err := Compress(src, packed, true)
	require.NoError(t, err)
	require.Equal(t, int64(151), n)

	raw, err := os.ReadFile(packed)
	require.NoError(t, err)
	require.Equal(t, mustDecodeHex(testStringCompressed), raw)

	n, err = Decompress(packed, filepath.Join(dir, "out"))
	require.NoError(t, err)
	require.Equal(t, int64(80), n)
}

func TestCompress_NotForced(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "in", []byte(testString))
	packed := filepath.Join(dir, "in.huf")

	n, err := Compress(src, packed, false)
	require.ErrorIs(t, err, ErrIncompressible)
	require.Equal(t, int64(151), n)
	_, err = os.Stat(packed)
	require.True(t, os.IsNotExist(err), "expected no output file, got %v", err)
}

func TestCompress_NotForcedShrinks(t *testing.T) {
	data := []byte("aaaaaaaaab")
	dir := t.TempDir()
	src := writeTestFile(t, dir, "in", data)
	packed := filepath.Join(dir, "in.huf")

	n, err := Compress(src, packed, false)
	require.NoError(t, err)
	require.Equal(t, int64(77), n)

	raw, err := os.ReadFile(packed)
	require.NoError(t, err)
	require.Equal(t, mustDecodeHex("499602c1262c0261ff88"), raw)
}

func TestCompress_Errors(t *testing.T) {
	dir := t.TempDir()
	empty := writeTestFile(t, dir, "empty", nil)
	out := filepath.Join(dir, "out")

	_, err := Compress("", out, true)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Compress(empty, "", true)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Compress(empty, out, true)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = os.Stat(out)
	require.True(t, os.IsNotExist(err), "expected no output file, got %v", err)

	_, err = Compress(filepath.Join(dir, "missing"), out, true)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecompress_Errors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	_, err := Decompress("", out)
	require.ErrorIs(t, err, ErrInvalidArgument)

	plain := writeTestFile(t, dir, "plain", []byte(testString))
	_, err = Decompress(plain, out)
	require.ErrorIs(t, err, ErrFormat)
	_, err = os.Stat(out)
	require.True(t, os.IsNotExist(err), "expected partial output to be removed, got %v", err)

	raw := mustDecodeHex(testStringCompressed)
	truncated := writeTestFile(t, dir, "truncated", raw[:len(raw)-2])
	_, err = Decompress(truncated, out)
	require.ErrorIs(t, err, ErrTruncated)
	_, err = os.Stat(out)
	require.True(t, os.IsNotExist(err), "expected partial output to be removed, got %v", err)
}

func TestSameFile(t *testing.T) {
	dir := t.TempDir()

	plain := writeTestFile(t, dir, "plain", []byte(testString))
	_, err := Compress(plain, plain, true)
	require.ErrorIs(t, err, ErrInvalidArgument)
	data, err := os.ReadFile(plain)
	require.NoError(t, err)
	require.Equal(t, testString, string(data))

	// A different spelling of the same path is still the same file.
	_, err = Compress(plain, filepath.Join(dir, ".", "plain"), true)
	require.ErrorIs(t, err, ErrInvalidArgument)

	raw := mustDecodeHex(testStringCompressed)
	packed := writeTestFile(t, dir, "packed", raw)
	_, err = Decompress(packed, packed)
	require.ErrorIs(t, err, ErrInvalidArgument)
	data, err = os.ReadFile(packed)
	require.NoError(t, err)
	require.Equal(t, raw, data)
}

func TestStreams(t *testing.T) {
	data := makeTestData(3000)

	var packed bytes.Buffer
	n, err := CompressStream(&packed, bytes.NewReader(data), true)
	require.NoError(t, err)
	require.Equal(t, (n+7)/8, int64(packed.Len()))

	var unpacked bytes.Buffer
	m, err := DecompressStream(&unpacked, &packed)
	require.NoError(t, err)
	require.Equal(t, int64(8*len(data)), m)
	require.Equal(t, data, unpacked.Bytes())
}

func TestCompressStream_NotForced(t *testing.T) {
	var packed bytes.Buffer
	n, err := CompressStream(&packed, strings.NewReader(testString), false)
	require.ErrorIs(t, err, ErrIncompressible)
	require.Equal(t, int64(151), n)
	require.Zero(t, packed.Len())

	_, err = CompressStream(&packed, strings.NewReader(""), true)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Zero(t, packed.Len())
}

func TestCompressStream_Rewinds(t *testing.T) {
	src := strings.NewReader(testString)
	_, err := src.Seek(4, io.SeekStart)
	require.NoError(t, err)

	var packed bytes.Buffer
	n, err := CompressStream(&packed, src, true)
	require.NoError(t, err)
	require.Equal(t, int64(151), n)
	require.Equal(t, mustDecodeHex(testStringCompressed), packed.Bytes())
}
