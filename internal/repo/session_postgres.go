package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jluoherm/HuffmanCoding/internal/model"
)

const sessionColumns = `id, frequencies, codes, bits, packed, bit_len, symbols, created_at`

type sessionRepoPostgres struct {
	pool *pgxpool.Pool
}

// NewSessionRepoPostgres expects the schema created by Migrate.
func NewSessionRepoPostgres(pool *pgxpool.Pool) SessionRepo {
	return &sessionRepoPostgres{pool: pool}
}

func (r *sessionRepoPostgres) Save(ctx context.Context, s *model.Session) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO huffman_sessions (`+sessionColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
  frequencies = EXCLUDED.frequencies,
  codes       = EXCLUDED.codes,
  bits        = EXCLUDED.bits,
  packed      = EXCLUDED.packed,
  bit_len     = EXCLUDED.bit_len,
  symbols     = EXCLUDED.symbols`,
		s.ID, s.Frequencies, s.Codes, s.Bits, s.Packed, s.BitLen, s.Symbols, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("save session %s: %w", s.ID, err)
	}
	return nil
}

func (r *sessionRepoPostgres) FindByID(ctx context.Context, id string) (*model.Session, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+sessionColumns+` FROM huffman_sessions WHERE id = $1`, id)
	s, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find session %s: %w", id, err)
	}
	return s, nil
}

func (r *sessionRepoPostgres) List(ctx context.Context) ([]*model.Session, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+sessionColumns+` FROM huffman_sessions ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []*model.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return out, nil
}

func scanSession(row pgx.Row) (*model.Session, error) {
	var s model.Session
	if err := row.Scan(&s.ID, &s.Frequencies, &s.Codes, &s.Bits, &s.Packed, &s.BitLen, &s.Symbols, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
