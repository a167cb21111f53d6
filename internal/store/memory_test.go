package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()

	val, err := s.Get(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, val)
}

func TestMemoryStoreSetGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, "k", []byte(`[1,2,3]`)))

	val, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), val)
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Set(ctx, "k", []byte("first"))
	s.Set(ctx, "k", []byte("second"))

	val, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("second"), val)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := []byte("data")
	s.Set(ctx, "k", in)
	in[0] = 'X'

	out, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("data"), out)

	out[0] = 'Y'
	again, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("data"), again)
}

func TestProgressKeyFormat(t *testing.T) {
	assert.Equal(t, "completedLessons_7_mia@example.com", ProgressKey(7, "mia@example.com"))
}
