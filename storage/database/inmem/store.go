package inmemdb

import (
	"context"

	"github.com/trezcool/guruwali/core/journal"
)

type store struct {
	db *kvTable
}

var _ journal.Store = (*store)(nil) // interface compliance check

func NewStore(db *DB) journal.Store {
	return &store{db: db.kv}
}

func (s *store) Load(_ context.Context, key string) (string, bool, error) {
	s.db.RLock()
	defer s.db.RUnlock()
	v, ok := s.db.table[key]
	return v, ok, nil
}

func (s *store) Save(_ context.Context, key, value string) error {
	s.db.Lock()
	defer s.db.Unlock()
	s.db.table[key] = value
	return nil
}
