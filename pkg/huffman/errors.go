package huffman

import "errors"

var (
	// heap
	ErrEmptyHeap      = errors.New("huffman: heap is empty")
	ErrDuplicateValue = errors.New("huffman: value already in heap")
	ErrNotFound       = errors.New("huffman: value not in heap")

	// tree
	ErrEmptyAlphabet    = errors.New("huffman: empty alphabet")
	ErrInvalidFrequency = errors.New("huffman: frequency must be positive")

	// codec
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")
	ErrTruncatedCode = errors.New("huffman: truncated code")
	ErrMalformedCode = errors.New("huffman: malformed code")
)
