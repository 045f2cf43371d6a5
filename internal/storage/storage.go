package storage

import "context"

// Document keys inside the blob store. The whole application state lives in
// two JSON documents.
const (
	TasksKey = "tasks"
	BoardKey = "board"
)

// Blob is a durable key-value store with string keys and JSON values. Any
// backend that can round-trip bytes under a key suffices; Get reports
// found=false for absent keys.
type Blob interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
