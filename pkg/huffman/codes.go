package huffman

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// CodeTable maps each symbol to its code, a string of '0' and '1'.
type CodeTable map[rune]string

type frame struct {
	id   NodeID
	path string
}

// GenerateCodes walks t depth first and records the path to every leaf:
// '0' for a left edge, '1' for a right edge. A tree made of a single leaf
// gets the code "0"; an empty tree gives an empty table.
func GenerateCodes(t *Tree) CodeTable {
	if t == nil || t.Len() == 0 {
		return CodeTable{}
	}
	table := make(CodeTable, (t.Len()+1)/2)
	if t.IsLeaf(t.root) {
		table[t.nodes[t.root].symbol] = "0"
		return table
	}

	stack := []frame{{id: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[f.id]
		if n.leaf {
			table[n.symbol] = f.path
			continue
		}
		// right first so the left subtree is visited first
		stack = append(stack,
			frame{id: n.right, path: f.path + "1"},
			frame{id: n.left, path: f.path + "0"},
		)
	}
	return table
}

// Lookup returns the code of r.
func (c CodeTable) Lookup(r rune) (string, bool) {
	code, ok := c[r]
	return code, ok
}

// Symbols returns the symbols of c in ascending order.
func (c CodeTable) Symbols() []rune {
	out := make([]rune, 0, len(c))
	for r := range c {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// IsPrefixFree reports whether no code is a prefix of another one.
func (c CodeTable) IsPrefixFree() bool {
	codes := make([]string, 0, len(c))
	for _, code := range c {
		if code == "" {
			return false
		}
		codes = append(codes, code)
	}
	// after sorting, a prefix sorts immediately before some string it prefixes
	slices.Sort(codes)
	for i := 1; i < len(codes); i++ {
		if strings.HasPrefix(codes[i], codes[i-1]) {
			return false
		}
	}
	return true
}

// EncodedLen returns the number of bits freqs would encode to. Symbols
// missing from c are ignored.
func (c CodeTable) EncodedLen(freqs Frequencies) int {
	n := 0
	for r, f := range freqs {
		n += len(c[r]) * f
	}
	return n
}

// String renders the table as `sym=code` pairs in symbol order.
func (c CodeTable) String() string {
	var sb strings.Builder
	for i, r := range c.Symbols() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		q := strconv.QuoteRune(r)
		sb.WriteString(q[1 : len(q)-1])
		sb.WriteByte('=')
		sb.WriteString(c[r])
	}
	return sb.String()
}
