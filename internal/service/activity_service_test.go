package service

import (
	"context"
	"fmt"
	"testing"

	"kidlearn_backend/internal/model"
	"kidlearn_backend/internal/store"

	"github.com/stretchr/testify/assert"
)

func newActivityFixture() *ActivityService {
	return NewActivityService(store.NewMemoryStore())
}

func TestRecordAssignsIDAndTimestamp(t *testing.T) {
	svc := newActivityFixture()
	ctx := context.Background()

	err := svc.Record(ctx, model.ActivityEntry{
		UserEmail: "mia@example.com",
		Action:    model.ActionLogin,
	})
	assert.NoError(t, err)

	entries, err := svc.QueryAll(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestRecordNewestFirst(t *testing.T) {
	svc := newActivityFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		svc.Record(ctx, model.ActivityEntry{
			ID:        fmt.Sprintf("entry-%d", i),
			UserEmail: "mia@example.com",
			Action:    model.ActionLessonCompleted,
		})
	}

	entries, err := svc.QueryAll(ctx, 0)
	assert.NoError(t, err)
	assert.Equal(t, "entry-2", entries[0].ID)
	assert.Equal(t, "entry-0", entries[2].ID)
}

func TestRecordEvictsPastCap(t *testing.T) {
	svc := newActivityFixture()
	ctx := context.Background()

	for i := 0; i < ActivityCap+5; i++ {
		err := svc.Record(ctx, model.ActivityEntry{
			ID:        fmt.Sprintf("entry-%d", i),
			UserEmail: "mia@example.com",
			Action:    model.ActionLessonCompleted,
		})
		assert.NoError(t, err)
	}

	entries, err := svc.QueryAll(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, ActivityCap)

	// The newest survives at the head, the first five are gone.
	assert.Equal(t, fmt.Sprintf("entry-%d", ActivityCap+4), entries[0].ID)
	assert.Equal(t, "entry-5", entries[ActivityCap-1].ID)
}

func TestQueryAllLimit(t *testing.T) {
	svc := newActivityFixture()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		svc.Record(ctx, model.ActivityEntry{UserEmail: "mia@example.com", Action: model.ActionLogin})
	}

	entries, err := svc.QueryAll(ctx, 4)
	assert.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestQueryByUserFilters(t *testing.T) {
	svc := newActivityFixture()
	ctx := context.Background()

	svc.Record(ctx, model.ActivityEntry{ID: "m1", UserEmail: "mia@example.com", Action: model.ActionLogin})
	svc.Record(ctx, model.ActivityEntry{ID: "l1", UserEmail: "leo@example.com", Action: model.ActionLogin})
	svc.Record(ctx, model.ActivityEntry{ID: "m2", UserEmail: "mia@example.com", Action: model.ActionLessonCompleted})

	entries, err := svc.QueryByUser(ctx, "mia@example.com", 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "m2", entries[0].ID)
	assert.Equal(t, "m1", entries[1].ID)

	none, err := svc.QueryByUser(ctx, "nobody@example.com", 0)
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestQueryEmptyFeed(t *testing.T) {
	svc := newActivityFixture()

	entries, err := svc.QueryAll(context.Background(), 10)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
