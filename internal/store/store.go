package store

import (
	"context"
	"fmt"
)

// Store is the small key-value surface the progress and activity data live
// behind: JSON blobs keyed by string. Backends are swappable — Redis in
// production, an in-memory map in tests. Writes are last-write-wins with no
// merge; concurrent writers to the same key interleave arbitrarily.
type Store interface {
	// Get returns the value at key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// ProgressKey is where a user's completed lesson ordinals for a course are
// kept, as a JSON array of integers.
func ProgressKey(courseID uint, userEmail string) string {
	return fmt.Sprintf("completedLessons_%d_%s", courseID, userEmail)
}

// ActivityKey holds the capped recent-activity list as a JSON array.
const ActivityKey = "userActivity"
