package huffman

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// Frequencies maps a symbol to the number of times it was observed.
type Frequencies map[rune]int

// CountFrequencies counts every rune of s.
func CountFrequencies(s string) Frequencies {
	f := make(Frequencies)
	f.Add(s)
	return f
}

// Add counts the runes of s on top of what is already in f. Invalid UTF-8
// bytes are counted as utf8.RuneError; NewFromText refuses such text.
func (f Frequencies) Add(s string) {
	for _, r := range s {
		f[r]++
	}
}

// Symbols returns the symbols of f in ascending order.
func (f Frequencies) Symbols() []rune {
	out := make([]rune, 0, len(f))
	for r := range f {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// Total returns the sum of all counts.
func (f Frequencies) Total() int {
	n := 0
	for _, c := range f {
		n += c
	}
	return n
}

func (f Frequencies) Clone() Frequencies {
	out := make(Frequencies, len(f))
	for r, c := range f {
		out[r] = c
	}
	return out
}

// ToStrings converts f into a string-keyed map, suitable for JSON.
func (f Frequencies) ToStrings() map[string]int {
	out := make(map[string]int, len(f))
	for r, c := range f {
		out[string(r)] = c
	}
	return out
}

// FrequenciesFromStrings is the inverse of ToStrings. Every key must be
// exactly one rune.
func FrequenciesFromStrings(m map[string]int) (Frequencies, error) {
	out := make(Frequencies, len(m))
	for k, c := range m {
		r, size := utf8.DecodeRuneInString(k)
		if size == 0 || size != len(k) || (r == utf8.RuneError && size == 1) {
			return nil, fmt.Errorf("huffman: symbol %q is not a single character", k)
		}
		out[r] = c
	}
	return out, nil
}
