package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jluoherm/HuffmanCoding/internal/metrics"
	"github.com/jluoherm/HuffmanCoding/internal/model"
	"github.com/jluoherm/HuffmanCoding/internal/repo"
	"github.com/jluoherm/HuffmanCoding/pkg/huffman"
	"github.com/jluoherm/HuffmanCoding/pkg/logger"
)

var (
	ErrEmptyInput    = errors.New("input is empty")
	ErrInputTooLarge = errors.New("input is too large")
	ErrNoBits        = errors.New("either bits or packed must be given")
	ErrAmbiguousBits = errors.New("bits and packed are mutually exclusive")
)

// DecodeInput carries the bits to decode, either as a '0'/'1' string or
// packed MSB-first with the number of meaningful bits, never both.
type DecodeInput struct {
	Bits   string
	Packed []byte
	BitLen int
}

type CodecService struct {
	repo     repo.SessionRepo
	logger   logger.Logger
	maxRunes int
	now      func() time.Time
}

func NewCodecService(r repo.SessionRepo, l logger.Logger, maxRunes int) *CodecService {
	return &CodecService{repo: r, logger: l, maxRunes: maxRunes, now: time.Now}
}

// Encode builds a code for text, encodes it and stores the result as a new
// session.
func (s *CodecService) Encode(ctx context.Context, text string) (*model.Session, error) {
	if text == "" {
		metrics.Encodes.WithLabelValues(metrics.ResultRejected).Inc()
		return nil, ErrEmptyInput
	}
	n := utf8.RuneCountInString(text)
	if s.maxRunes > 0 && n > s.maxRunes {
		metrics.Encodes.WithLabelValues(metrics.ResultRejected).Inc()
		return nil, fmt.Errorf("%w: %d symbols, limit %d", ErrInputTooLarge, n, s.maxRunes)
	}

	codec, err := huffman.NewFromText(text)
	if err != nil {
		result := metrics.ResultError
		if errors.Is(err, huffman.ErrUnknownSymbol) {
			result = metrics.ResultRejected
		}
		metrics.Encodes.WithLabelValues(result).Inc()
		return nil, err
	}
	bits, err := codec.Encode(text)
	if err != nil {
		metrics.Encodes.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}
	packed, err := huffman.Pack(bits)
	if err != nil {
		metrics.Encodes.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}

	table := codec.Table()
	codes := make(map[string]string, len(table))
	for r, code := range table {
		codes[string(r)] = code
	}
	sess := &model.Session{
		ID:          uuid.NewString(),
		Frequencies: codec.Frequencies().ToStrings(),
		Codes:       codes,
		Bits:        bits,
		Packed:      packed,
		BitLen:      len(bits),
		Symbols:     n,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Save(ctx, sess); err != nil {
		metrics.Encodes.WithLabelValues(metrics.ResultError).Inc()
		s.logger.Errorf("save session: %v", err)
		return nil, err
	}

	metrics.Encodes.WithLabelValues(metrics.ResultOK).Inc()
	metrics.BitsPerSymbol.Observe(float64(len(bits)) / float64(n))
	metrics.AlphabetSize.Observe(float64(len(table)))
	s.logger.Infof("session created: %s (%d symbols, %d distinct, %d bits)", sess.ID, n, len(table), len(bits))
	return sess, nil
}

// Decode decodes in against the tree of session id. The tree is rebuilt
// from the stored frequencies, which yields the tree used for encoding.
func (s *CodecService) Decode(ctx context.Context, id string, in DecodeInput) (string, error) {
	sess, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if in.Bits != "" && (in.Packed != nil || in.BitLen != 0) {
		metrics.Decodes.WithLabelValues(metrics.ResultRejected).Inc()
		return "", ErrAmbiguousBits
	}

	bits := in.Bits
	if bits == "" && in.Packed != nil {
		if bits, err = huffman.Unpack(in.Packed, in.BitLen); err != nil {
			metrics.Decodes.WithLabelValues(metrics.ResultRejected).Inc()
			return "", err
		}
	} else if bits == "" && in.BitLen != 0 {
		metrics.Decodes.WithLabelValues(metrics.ResultRejected).Inc()
		return "", ErrNoBits
	}

	freqs, err := huffman.FrequenciesFromStrings(sess.Frequencies)
	if err != nil {
		metrics.Decodes.WithLabelValues(metrics.ResultError).Inc()
		s.logger.Errorf("session %s has bad frequencies: %v", id, err)
		return "", err
	}
	codec, err := huffman.New(freqs)
	if err != nil {
		metrics.Decodes.WithLabelValues(metrics.ResultError).Inc()
		s.logger.Errorf("rebuild tree for session %s: %v", id, err)
		return "", err
	}

	text, err := codec.Decode(bits)
	if err != nil {
		metrics.Decodes.WithLabelValues(metrics.ResultRejected).Inc()
		s.logger.Warnf("decode for session %s rejected: %v", id, err)
		return "", err
	}
	metrics.Decodes.WithLabelValues(metrics.ResultOK).Inc()
	return text, nil
}

func (s *CodecService) Get(ctx context.Context, id string) (*model.Session, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CodecService) List(ctx context.Context) ([]*model.Session, error) {
	return s.repo.List(ctx)
}
