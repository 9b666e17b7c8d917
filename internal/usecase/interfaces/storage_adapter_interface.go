package interfaces

import "context"

// IStorageAdapter abstracts the durable key/value storage behind the record
// stores. Each store serializes its whole collection to a single key, so the
// adapter only needs get/set of opaque byte payloads.
//
// Contract:
//   - Get returns (nil, nil) when the key has never been written.
//   - Set overwrites the previous value; there is no versioning and no
//     conflict detection (last write wins).

type IStorageAdapter interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
