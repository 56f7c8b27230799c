package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jluoherm/HuffmanCoding/internal/repo"
	"github.com/jluoherm/HuffmanCoding/pkg/huffman"
	"github.com/jluoherm/HuffmanCoding/pkg/logger"
)

func newTestService(maxRunes int) *CodecService {
	s := NewCodecService(repo.NewSessionRepoInMemory(), logger.Nop(), maxRunes)
	s.now = func() time.Time { return time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC) }
	return s
}

func TestEncodeStoresSession(t *testing.T) {
	s := newTestService(0)
	ctx := context.Background()

	sess, err := s.Encode(ctx, "heeeellooorrrrrr")
	if err != nil {
		t.Fatal(err)
	}
	if sess.ID == "" {
		t.Fatal("session has no id")
	}
	if sess.Bits != "11101010101011111111110110110000000" {
		t.Fatalf("Bits = %s", sess.Bits)
	}
	if sess.BitLen != 35 || len(sess.Packed) != 5 {
		t.Fatalf("BitLen = %d, packed %d bytes", sess.BitLen, len(sess.Packed))
	}
	if sess.Symbols != 16 || sess.Frequencies["r"] != 6 || sess.Codes["r"] != "0" {
		t.Fatalf("session = %+v", sess)
	}

	got, err := s.Get(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bits != sess.Bits {
		t.Fatalf("stored bits = %s", got.Bits)
	}
	list, err := s.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("List = %d sessions, %v", len(list), err)
	}
}

func TestEncodeRejects(t *testing.T) {
	s := newTestService(4)
	ctx := context.Background()
	if _, err := s.Encode(ctx, ""); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("empty: err = %v", err)
	}
	if _, err := s.Encode(ctx, "abcde"); !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("too large: err = %v", err)
	}
	if _, err := s.Encode(ctx, "a\xffb"); !errors.Is(err, huffman.ErrUnknownSymbol) {
		t.Fatalf("invalid UTF-8: err = %v", err)
	}
	// the limit counts symbols, not bytes
	if _, err := s.Encode(ctx, "日本語!"); err != nil {
		t.Fatalf("four runes rejected: %v", err)
	}
}

func TestDecode(t *testing.T) {
	s := newTestService(0)
	ctx := context.Background()
	in := "pipppperrr pippppar piippppeer"
	sess, err := s.Encode(ctx, in)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		in      DecodeInput
		want    string
		wantErr error
	}{
		{"bits", DecodeInput{Bits: sess.Bits}, in, nil},
		{"packed", DecodeInput{Packed: sess.Packed, BitLen: sess.BitLen}, in, nil},
		{"prefix", DecodeInput{Bits: "0110"}, "pi", nil},
		{"truncated", DecodeInput{Bits: "011"}, "", huffman.ErrTruncatedCode},
		{"malformed", DecodeInput{Bits: "0a"}, "", huffman.ErrMalformedCode},
		{"packed too short", DecodeInput{Packed: []byte{0}, BitLen: 9}, "", huffman.ErrTruncatedCode},
		{"length without data", DecodeInput{BitLen: 3}, "", ErrNoBits},
		{"bits and packed", DecodeInput{Bits: sess.Bits, Packed: sess.Packed, BitLen: sess.BitLen}, "", ErrAmbiguousBits},
		{"bits with length", DecodeInput{Bits: "0110", BitLen: 4}, "", ErrAmbiguousBits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Decode(ctx, sess.ID, tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Decode = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := s.Decode(ctx, "nope", DecodeInput{Bits: "0"}); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("unknown session: err = %v", err)
	}
}

func TestDecodeManySessions(t *testing.T) {
	s := newTestService(0)
	ctx := context.Background()
	inputs := []string{"a", "aaabbbbbccccccccdddddddddddd", strings.Repeat("xyz", 30) + "q"}
	for _, in := range inputs {
		sess, err := s.Encode(ctx, in)
		if err != nil {
			t.Fatal(err)
		}
		out, err := s.Decode(ctx, sess.ID, DecodeInput{Bits: sess.Bits})
		if err != nil {
			t.Fatal(err)
		}
		if out != in {
			t.Fatalf("got %q, want %q", out, in)
		}
	}
}
