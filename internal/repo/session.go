package repo

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/jluoherm/HuffmanCoding/internal/model"
)

var ErrNotFound = errors.New("not found")

// SessionRepo stores encoded sessions.
type SessionRepo interface {
	Save(ctx context.Context, s *model.Session) error
	FindByID(ctx context.Context, id string) (*model.Session, error)
	// List returns sessions oldest first.
	List(ctx context.Context) ([]*model.Session, error)
}

type sessionRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*model.Session
}

func NewSessionRepoInMemory() SessionRepo {
	return &sessionRepoInMemory{store: make(map[string]*model.Session)}
}

func (r *sessionRepoInMemory) Save(_ context.Context, s *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[s.ID] = s
	return nil
}

func (r *sessionRepoInMemory) FindByID(_ context.Context, id string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *sessionRepoInMemory) List(_ context.Context) ([]*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Session, 0, len(r.store))
	for _, s := range r.store {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b *model.Session) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out, nil
}
