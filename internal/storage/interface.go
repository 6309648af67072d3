package storage

import (
	"context"
)

// Storage is a durable key-value slot holding serialized snapshots
type Storage interface {
	// GetSnapshot returns the stored snapshot, or model.ErrSnapshotNotFound if the key was never written
	GetSnapshot(ctx context.Context, key string) (string, error)
	// SaveSnapshot overwrites the snapshot stored under key
	SaveSnapshot(ctx context.Context, key string, data string) error
}
