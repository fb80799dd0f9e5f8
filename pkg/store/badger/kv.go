package badger

import (
	"context"

	"github.com/statequery/statequery/pkg/store"
)

// KeyValueStore is a badger-backed plain key-value store.
type KeyValueStore struct {
	*badgerStore
}

var _ store.KeyValueStore = (*KeyValueStore)(nil)

// OpenKeyValueStore opens (or creates) a badger-backed key-value store.
func OpenKeyValueStore(name string, opts Options) (*KeyValueStore, error) {
	bs, err := openBadgerStore(name, opts)
	if err != nil {
		return nil, err
	}
	return &KeyValueStore{badgerStore: bs}, nil
}

func (s *KeyValueStore) Kind() store.Kind { return store.KindKeyValue }

// Get returns the value for key.
func (s *KeyValueStore) Get(ctx context.Context, key []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.get(key)
}

// Put stores value under key.
func (s *KeyValueStore) Put(ctx context.Context, key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.set(key, value)
}

// Delete removes key.
func (s *KeyValueStore) Delete(ctx context.Context, key []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.del(key)
}

// Range returns an iterator over [from, to], both bounds inclusive.
func (s *KeyValueStore) Range(ctx context.Context, from, to []byte) (store.Iterator[[]byte], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	keys, values, err := s.scan(from, to)
	if err != nil {
		return nil, err
	}
	return newSliceIterator(keys, values), nil
}

// All returns an iterator over every entry.
func (s *KeyValueStore) All(ctx context.Context) (store.Iterator[[]byte], error) {
	return s.Range(ctx, nil, nil)
}

// ApproximateNumEntries returns the number of live keys. Badger has no cheap
// estimate for this, so the store counts keys without prefetching values.
func (s *KeyValueStore) ApproximateNumEntries(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	return s.count()
}
