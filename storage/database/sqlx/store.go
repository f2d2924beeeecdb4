package sqlxdb

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/guruwali/core"
	"github.com/trezcool/guruwali/core/journal"
)

var nowFunc = time.Now // mockable

type store struct {
	db     *sqlx.DB
	prefix string
}

var _ journal.Store = (*store)(nil) // interface compliance check

// NewStore returns a journal.Store backed by the kv_store table. Every key is stored as prefix+key.
func NewStore(db *sqlx.DB, prefix string) journal.Store {
	return &store{db: db, prefix: prefix}
}

func (s *store) Load(ctx context.Context, key string) (string, bool, error) {
	var value string
	q := s.db.Rebind("SELECT value FROM kv_store WHERE name = ?")
	err := s.db.GetContext(ctx, &value, q, s.prefix+key)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, errors.Wrapf(checkConn(err), "loading %q", key)
	}
	return value, true, nil
}

func (s *store) Save(ctx context.Context, key, value string) error {
	q := s.db.Rebind(`
		INSERT INTO kv_store (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if _, err := s.db.ExecContext(ctx, q, s.prefix+key, value, nowFunc().UTC()); err != nil {
		return errors.Wrapf(checkConn(err), "saving %q", key)
	}
	return nil
}

// checkConn turns a lost connection into a shutdown error.
func checkConn(err error) error {
	if errors.Is(err, sql.ErrConnDone) {
		return core.NewShutdownError("database connection lost: " + err.Error())
	}
	return err
}
