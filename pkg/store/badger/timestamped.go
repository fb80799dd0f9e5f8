package badger

import (
	"context"

	"github.com/statequery/statequery/pkg/store"
)

// TimestampedKeyValueStore is a badger-backed timestamp-augmented key-value
// store. Values are persisted with an 8-byte big-endian timestamp prefix;
// see codec.go.
type TimestampedKeyValueStore struct {
	*badgerStore
}

var _ store.TimestampedKeyValueStore = (*TimestampedKeyValueStore)(nil)

// OpenTimestampedKeyValueStore opens (or creates) a badger-backed
// timestamped key-value store.
func OpenTimestampedKeyValueStore(name string, opts Options) (*TimestampedKeyValueStore, error) {
	bs, err := openBadgerStore(name, opts)
	if err != nil {
		return nil, err
	}
	return &TimestampedKeyValueStore{badgerStore: bs}, nil
}

func (s *TimestampedKeyValueStore) Kind() store.Kind { return store.KindTimestampedKeyValue }

// Get returns the value and record timestamp for key.
func (s *TimestampedKeyValueStore) Get(ctx context.Context, key []byte) (*store.ValueAndTimestamp, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	raw, err := s.get(key)
	if err != nil {
		return nil, err
	}
	return decodeValueAndTimestamp(s.name, raw)
}

// Put stores value and timestamp under key.
func (s *TimestampedKeyValueStore) Put(ctx context.Context, key []byte, value store.ValueAndTimestamp) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.set(key, encodeValueAndTimestamp(value))
}

// Delete removes key.
func (s *TimestampedKeyValueStore) Delete(ctx context.Context, key []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.del(key)
}

// Range returns an iterator over [from, to], both bounds inclusive.
func (s *TimestampedKeyValueStore) Range(ctx context.Context, from, to []byte) (store.Iterator[*store.ValueAndTimestamp], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	keys, raws, err := s.scan(from, to)
	if err != nil {
		return nil, err
	}
	values := make([]*store.ValueAndTimestamp, len(raws))
	for i, raw := range raws {
		vt, err := decodeValueAndTimestamp(s.name, raw)
		if err != nil {
			return nil, err
		}
		values[i] = vt
	}
	return newSliceIterator(keys, values), nil
}

// All returns an iterator over every entry.
func (s *TimestampedKeyValueStore) All(ctx context.Context) (store.Iterator[*store.ValueAndTimestamp], error) {
	return s.Range(ctx, nil, nil)
}

// ApproximateNumEntries returns the number of live keys.
func (s *TimestampedKeyValueStore) ApproximateNumEntries(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	return s.count()
}
