package redis

import (
	"fmt"
)

// Key prefix for all roster data
const keyPrefix = "teamroster"

// snapshotKey returns the Redis key for a named snapshot slot
func snapshotKey(key string) string {
	return fmt.Sprintf("%s:snapshot:%s", keyPrefix, key)
}
