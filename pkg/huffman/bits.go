package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

/*** ---------- MSB-first bit packing ---------- ***/

// Pack stores a '0'/'1' string eight bits per byte, most significant bit
// first. The last byte is padded with zero bits.
func Pack(bits string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return nil, fmt.Errorf("%w: invalid bit %q at %d", ErrMalformedCode, bits[i], i)
		}
		if err := w.WriteBool(bits[i] == '1'); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack reads the first n bits of data back into a '0'/'1' string.
func Unpack(data []byte, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative bit count %d", ErrMalformedCode, n)
	}
	if n > len(data)*8 {
		return "", fmt.Errorf("%w: want %d bits, have %d", ErrTruncatedCode, n, len(data)*8)
	}
	r := bitio.NewReader(bytes.NewReader(data))
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return "", fmt.Errorf("%w: %v", ErrTruncatedCode, err)
			}
			return "", err
		}
		out[i] = '0'
		if bit {
			out[i] = '1'
		}
	}
	return string(out), nil
}
