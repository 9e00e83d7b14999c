package redis

import (
	"fmt"

	"github.com/mcoot/teamalloc/internal/model"
)

// Key prefix for all allocator data
const keyPrefix = "teamalloc"

// runKey returns the Redis key for a Run
func runKey(id model.RunID) string {
	return fmt.Sprintf("%s:run:%s", keyPrefix, id)
}

// runsIndexKey returns the Redis key for the sorted set of run IDs,
// scored by creation time
func runsIndexKey() string {
	return fmt.Sprintf("%s:idx:runs", keyPrefix)
}
