package inmemdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	s := NewStore(db)

	_, ok, err := s.Load(ctx, "students")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Save(ctx, "students", "[]"))
	assert.NoError(t, s.Save(ctx, "students", `[{"id":"1"}]`))
	v, ok, err := s.Load(ctx, "students")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)

	// stores opened on the same DB share records
	v, ok, _ = NewStore(db).Load(ctx, "students")
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)
}
