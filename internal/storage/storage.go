// Package storage persists whole collections as single JSON documents.
//
// A Persister never interprets the documents it stores: the record store
// marshals a full collection and hands the bytes over, and on start-up asks
// for them back. There is no incremental format.
package storage

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Load when no document has been saved under
// the given name yet.
var ErrNotExist = errors.New("storage: document does not exist")

type Persister interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}
