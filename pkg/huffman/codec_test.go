package huffman

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateCodesKnownTable(t *testing.T) {
	c, err := NewFromText("aaabbbbbccccccccdddddddddddd")
	if err != nil {
		t.Fatal(err)
	}
	want := CodeTable{'d': "0", 'c': "10", 'a': "110", 'b': "111"}
	got := c.Table()
	if len(got) != len(want) {
		t.Fatalf("table = %v, want %v", got, want)
	}
	for r, code := range want {
		if got[r] != code {
			t.Errorf("code(%q) = %q, want %q", r, got[r], code)
		}
	}
	if s := got.String(); s != "a=110 b=111 c=10 d=0" {
		t.Errorf("String() = %q", s)
	}
}

func TestEncodeVectors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"heeeellooorrrrrr", "11101010101011111111110110110000000"},
		{"pipppperrr pippppar piippppeer", "011000001001111111111011011000001010111101101101100000100100111"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := NewFromText(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			bits, err := c.Encode(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if bits != tt.want {
				t.Fatalf("Encode(%q)\n got %s\nwant %s", tt.in, bits, tt.want)
			}
			text, err := c.Decode(bits)
			if err != nil {
				t.Fatal(err)
			}
			if text != tt.in {
				t.Fatalf("Decode = %q, want %q", text, tt.in)
			}
			if n := c.Table().EncodedLen(c.Frequencies()); n != len(bits) {
				t.Fatalf("EncodedLen = %d, want %d", n, len(bits))
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"zzzzzz",
		"ab",
		"abracadabra",
		"the quick brown fox jumps over the lazy dog",
		"héllo wörld ✓✓✓ 日本語",
		strings.Repeat("mississippi ", 50),
	}
	for _, in := range inputs {
		c, err := NewFromText(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if !c.Table().IsPrefixFree() {
			t.Fatalf("%q: table %v is not prefix free", in, c.Table())
		}
		bits, err := c.Encode(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		out, err := c.Decode(bits)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if out != in {
			t.Fatalf("round trip: got %q, want %q", out, in)
		}
	}
}

func TestSingleSymbolAlphabet(t *testing.T) {
	c, err := NewFromText("qqqq")
	if err != nil {
		t.Fatal(err)
	}
	table := c.Table()
	if len(table) != 1 || table['q'] != "0" {
		t.Fatalf("table = %v, want q=0", table)
	}
	bits, err := c.Encode("qqqq")
	if err != nil {
		t.Fatal(err)
	}
	if bits != "0000" {
		t.Fatalf("Encode = %q, want 0000", bits)
	}
	if out, err := c.Decode(bits); err != nil || out != "qqqq" {
		t.Fatalf("Decode = %q, %v", out, err)
	}
	if _, err := c.Decode("01"); !errors.Is(err, ErrMalformedCode) {
		t.Fatalf("Decode(01): err = %v, want ErrMalformedCode", err)
	}
}

func TestEncodeUnknownSymbol(t *testing.T) {
	c, err := NewFromText("abc")
	if err != nil {
		t.Fatal(err)
	}
	bits, err := c.Encode("abx")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("err = %v, want ErrUnknownSymbol", err)
	}
	if bits != "" {
		t.Fatalf("partial result %q returned with error", bits)
	}
}

func TestInvalidUTF8IsRejected(t *testing.T) {
	const in = "ab\xffc"
	if _, err := NewFromText(in); !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("NewFromText(%q): err = %v, want ErrUnknownSymbol", in, err)
	}

	// a table that does hold U+FFFD must still refuse the raw byte
	c, err := NewFromText("ab\uFFFDc")
	if err != nil {
		t.Fatal(err)
	}
	bits, err := c.Encode(in)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("Encode(%q): err = %v, want ErrUnknownSymbol", in, err)
	}
	if bits != "" {
		t.Fatalf("partial result %q returned with error", bits)
	}

	// a genuine U+FFFD is an ordinary symbol
	bits, err = c.Encode("\uFFFD")
	if err != nil {
		t.Fatal(err)
	}
	if out, err := c.Decode(bits); err != nil || out != "\uFFFD" {
		t.Fatalf("Decode = %q, %v", out, err)
	}
}

func TestGenerateCodesEmptyTree(t *testing.T) {
	if table := GenerateCodes(&Tree{}); len(table) != 0 {
		t.Fatalf("GenerateCodes(empty tree) = %v, want empty", table)
	}
	if table := GenerateCodes(nil); len(table) != 0 {
		t.Fatalf("GenerateCodes(nil) = %v, want empty", table)
	}
}

func TestDecodeErrors(t *testing.T) {
	c, err := NewFromText("heeeellooorrrrrr")
	if err != nil {
		t.Fatal(err)
	}
	// r=0 e=10 o=110 h=1110 l=1111
	tests := []struct {
		name string
		bits string
		want error
	}{
		{"ends mid code", "1", ErrTruncatedCode},
		{"ends after full code then partial", "0111", ErrTruncatedCode},
		{"not a bit", "01x", ErrMalformedCode},
		{"empty is fine", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := c.Decode(tt.bits)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if err != nil && out != "" {
				t.Fatalf("partial result %q returned with error", out)
			}
		})
	}
	if _, err := Decode("0", nil); !errors.Is(err, ErrMalformedCode) {
		t.Fatalf("Decode with nil tree: err = %v", err)
	}
}

func TestFrequencies(t *testing.T) {
	f := CountFrequencies("heeeellooorrrrrr")
	want := map[rune]int{'h': 1, 'e': 4, 'l': 2, 'o': 3, 'r': 6}
	for r, n := range want {
		if f[r] != n {
			t.Errorf("count(%q) = %d, want %d", r, f[r], n)
		}
	}
	f.Add("ll")
	if f['l'] != 4 {
		t.Fatalf("count('l') after Add = %d, want 4", f['l'])
	}
	if f.Total() != 18 {
		t.Fatalf("Total() = %d, want 18", f.Total())
	}
	if got := string(f.Symbols()); got != "ehlor" {
		t.Fatalf("Symbols() = %q", got)
	}

	g := CountFrequencies("94755534996")
	if g['5'] != 3 || g['4'] != 2 {
		t.Fatalf("digits: 5=%d 4=%d", g['5'], g['4'])
	}

	back, err := FrequenciesFromStrings(f.ToStrings())
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != len(f) || back['r'] != 6 {
		t.Fatalf("string round trip = %v", back)
	}
	if _, err := FrequenciesFromStrings(map[string]int{"ab": 1}); err == nil {
		t.Fatal("multi-rune key accepted")
	}
	if _, err := FrequenciesFromStrings(map[string]int{"": 1}); err == nil {
		t.Fatal("empty key accepted")
	}
}
