package provider

import (
	"context"

	"github.com/statequery/statequery/pkg/store"
)

// Adapters downgrade a timestamp-augmented store to its plain read
// capability by stripping the timestamp from every read result. They are
// stateless pass-throughs: every call forwards to the underlying handle, no
// result is cached, and the underlying state and liveness stay authoritative.
// Only the read surface is exposed; the adapted view carries no write or
// lifecycle operations.

// keyValueAdapter presents a ReadOnlyTimestampedKeyValueStore as a
// ReadOnlyKeyValueStore.
type keyValueAdapter struct {
	ts store.ReadOnlyTimestampedKeyValueStore
}

var _ store.ReadOnlyKeyValueStore = (*keyValueAdapter)(nil)

func newKeyValueAdapter(ts store.ReadOnlyTimestampedKeyValueStore) *keyValueAdapter {
	return &keyValueAdapter{ts: ts}
}

func (a *keyValueAdapter) Get(ctx context.Context, key []byte) ([]byte, error) {
	vt, err := a.ts.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return vt.Value, nil
}

func (a *keyValueAdapter) Range(ctx context.Context, from, to []byte) (store.Iterator[[]byte], error) {
	it, err := a.ts.Range(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &stripIterator{inner: it}, nil
}

func (a *keyValueAdapter) All(ctx context.Context) (store.Iterator[[]byte], error) {
	it, err := a.ts.All(ctx)
	if err != nil {
		return nil, err
	}
	return &stripIterator{inner: it}, nil
}

func (a *keyValueAdapter) ApproximateNumEntries(ctx context.Context) (uint64, error) {
	return a.ts.ApproximateNumEntries(ctx)
}

// stripIterator drops the timestamp from each entry of a timestamped
// key-value iterator.
type stripIterator struct {
	inner store.Iterator[*store.ValueAndTimestamp]
}

func (it *stripIterator) Next() bool  { return it.inner.Next() }
func (it *stripIterator) Key() []byte { return it.inner.Key() }

func (it *stripIterator) Value() []byte {
	vt := it.inner.Value()
	if vt == nil {
		return nil
	}
	return vt.Value
}

func (it *stripIterator) Err() error   { return it.inner.Err() }
func (it *stripIterator) Close() error { return it.inner.Close() }

// windowAdapter presents a ReadOnlyTimestampedWindowStore as a
// ReadOnlyWindowStore.
type windowAdapter struct {
	ts store.ReadOnlyTimestampedWindowStore
}

var _ store.ReadOnlyWindowStore = (*windowAdapter)(nil)

func newWindowAdapter(ts store.ReadOnlyTimestampedWindowStore) *windowAdapter {
	return &windowAdapter{ts: ts}
}

func (a *windowAdapter) Fetch(ctx context.Context, key []byte, timeFrom, timeTo int64) (store.WindowIterator[[]byte], error) {
	it, err := a.ts.Fetch(ctx, key, timeFrom, timeTo)
	if err != nil {
		return nil, err
	}
	return &stripWindowIterator{inner: it}, nil
}

func (a *windowAdapter) FetchAll(ctx context.Context, key []byte) (store.WindowIterator[[]byte], error) {
	it, err := a.ts.FetchAll(ctx, key)
	if err != nil {
		return nil, err
	}
	return &stripWindowIterator{inner: it}, nil
}

// stripWindowIterator drops the timestamp from each entry of a timestamped
// window iterator.
type stripWindowIterator struct {
	inner store.WindowIterator[*store.ValueAndTimestamp]
}

func (it *stripWindowIterator) Next() bool         { return it.inner.Next() }
func (it *stripWindowIterator) WindowStart() int64 { return it.inner.WindowStart() }

func (it *stripWindowIterator) Value() []byte {
	vt := it.inner.Value()
	if vt == nil {
		return nil
	}
	return vt.Value
}

func (it *stripWindowIterator) Err() error   { return it.inner.Err() }
func (it *stripWindowIterator) Close() error { return it.inner.Close() }
