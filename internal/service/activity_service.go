package service

import (
	"context"
	"encoding/json"
	"time"

	"kidlearn_backend/internal/model"
	"kidlearn_backend/internal/store"
	"kidlearn_backend/internal/util"

	"github.com/google/uuid"
)

// ActivityCap bounds the feed: newest first, oldest evicted (FIFO).
const ActivityCap = 50

// ActivityService keeps the capped recent-activity list in the key-value
// store. Appends are read-modify-write with last-write-wins; there is no
// deduplication and no ordering guarantee beyond insertion order.
type ActivityService struct {
	Store store.Store
}

func NewActivityService(kv store.Store) *ActivityService {
	return &ActivityService{Store: kv}
}

// Record prepends the entry and truncates the tail past the cap.
func (s *ActivityService) Record(ctx context.Context, entry model.ActivityEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	entries = append([]model.ActivityEntry{entry}, entries...)
	if len(entries) > ActivityCap {
		entries = entries[:ActivityCap]
	}

	return s.save(ctx, entries)
}

// QueryAll returns up to limit entries across all users, most recent first.
func (s *ActivityService) QueryAll(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// QueryByUser returns up to limit of one user's entries, most recent first.
func (s *ActivityService) QueryByUser(ctx context.Context, userEmail string, limit int) ([]model.ActivityEntry, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []model.ActivityEntry
	for _, e := range entries {
		if e.UserEmail != userEmail {
			continue
		}
		filtered = append(filtered, e)
		if limit > 0 && len(filtered) == limit {
			break
		}
	}
	return filtered, nil
}

func (s *ActivityService) load(ctx context.Context) ([]model.ActivityEntry, error) {
	raw, err := s.Store.Get(ctx, store.ActivityKey)
	if err != nil {
		return nil, util.Transportf(err)
	}
	if raw == nil {
		return nil, nil
	}

	var entries []model.ActivityEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

func (s *ActivityService) save(ctx context.Context, entries []model.ActivityEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := s.Store.Set(ctx, store.ActivityKey, raw); err != nil {
		return util.Transportf(err)
	}
	return nil
}
