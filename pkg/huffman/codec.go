package huffman

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

/*** ---------- Encode / Decode ---------- ***/

// Encode concatenates the codes of the runes of s in input order. Bytes
// that are not valid UTF-8 have no symbol and are rejected.
func Encode(table CodeTable, s string) (string, error) {
	var sb strings.Builder
	for i, r := range s {
		if r == utf8.RuneError {
			if _, width := utf8.DecodeRuneInString(s[i:]); width == 1 {
				return "", fmt.Errorf("%w: invalid UTF-8 byte %#x at offset %d", ErrUnknownSymbol, s[i], i)
			}
		}
		code, ok := table[r]
		if !ok {
			return "", fmt.Errorf("%w %q at offset %d", ErrUnknownSymbol, r, i)
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}

// Decode walks t along bits: '0' goes left, '1' goes right, and every leaf
// reached emits its symbol and restarts at the root.
func Decode(bits string, t *Tree) (string, error) {
	if t == nil || t.Len() == 0 {
		return "", fmt.Errorf("%w: no tree", ErrMalformedCode)
	}
	if t.IsLeaf(t.root) {
		return decodeSingle(bits, t)
	}

	var out strings.Builder
	cur := t.root
	for i := 0; i < len(bits); i++ {
		b := bits[i]
		if b != '0' && b != '1' {
			return "", fmt.Errorf("%w: invalid bit %q at %d", ErrMalformedCode, b, i)
		}
		next := t.child(cur, b)
		if next == noNode {
			return "", fmt.Errorf("%w: dead end at bit %d", ErrMalformedCode, i)
		}
		cur = next
		if n := t.nodes[cur]; n.leaf {
			out.WriteRune(n.symbol)
			cur = t.root
		}
	}
	if cur != t.root {
		return "", fmt.Errorf("%w: input ends inside a code after %d bits", ErrTruncatedCode, len(bits))
	}
	return out.String(), nil
}

// decodeSingle handles a tree whose root is its only leaf; the code of that
// leaf is "0".
func decodeSingle(bits string, t *Tree) (string, error) {
	sym := t.nodes[t.root].symbol
	var out strings.Builder
	for i := 0; i < len(bits); i++ {
		if bits[i] != '0' {
			return "", fmt.Errorf("%w: invalid bit %q at %d", ErrMalformedCode, bits[i], i)
		}
		out.WriteRune(sym)
	}
	return out.String(), nil
}

/*** ---------- Codec ---------- ***/

// Codec bundles the tree and code table built from one set of frequencies.
// It is not modified after New returns, so it may be read from several
// goroutines; a new input needs a new Codec.
type Codec struct {
	freqs Frequencies
	tree  *Tree
	table CodeTable
}

// New builds the tree and code table for freqs.
func New(freqs Frequencies) (*Codec, error) {
	tree, err := Build(freqs)
	if err != nil {
		return nil, err
	}
	return &Codec{
		freqs: freqs.Clone(),
		tree:  tree,
		table: GenerateCodes(tree),
	}, nil
}

// NewFromText counts the runes of s and builds a Codec for them.
// Text that is not valid UTF-8 is rejected with ErrUnknownSymbol.
func NewFromText(s string) (*Codec, error) {
	if i := invalidUTF8(s); i >= 0 {
		return nil, fmt.Errorf("%w: invalid UTF-8 byte %#x at offset %d", ErrUnknownSymbol, s[i], i)
	}
	return New(CountFrequencies(s))
}

// invalidUTF8 returns the offset of the first byte of s that does not start
// a valid rune, or -1.
func invalidUTF8(s string) int {
	for i, r := range s {
		if r != utf8.RuneError {
			continue
		}
		if _, width := utf8.DecodeRuneInString(s[i:]); width == 1 {
			return i
		}
	}
	return -1
}

func (c *Codec) Encode(s string) (string, error) { return Encode(c.table, s) }

func (c *Codec) Decode(bits string) (string, error) { return Decode(bits, c.tree) }

func (c *Codec) Tree() *Tree { return c.tree }

// Table returns a copy of the code table.
func (c *Codec) Table() CodeTable {
	out := make(CodeTable, len(c.table))
	for r, code := range c.table {
		out[r] = code
	}
	return out
}

// Frequencies returns a copy of the frequencies the codec was built from.
func (c *Codec) Frequencies() Frequencies { return c.freqs.Clone() }
