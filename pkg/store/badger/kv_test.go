package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statequery/statequery/pkg/store"
)

func openTestKV(t *testing.T) *KeyValueStore {
	t.Helper()
	kv, err := OpenKeyValueStore("test-kv", Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func openTestTimestampedKV(t *testing.T) *TimestampedKeyValueStore {
	t.Helper()
	ts, err := OpenTimestampedKeyValueStore("test-ts-kv", Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ts.Close() })
	return ts
}

func TestOpenKeyValueStoreValidation(t *testing.T) {
	t.Parallel()

	_, err := OpenKeyValueStore("", Options{InMemory: true})
	assert.Error(t, err)

	_, err = OpenKeyValueStore("no-dir", Options{})
	assert.Error(t, err)
}

func TestKeyValueStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := openTestKV(t)
	assert.Equal(t, "test-kv", kv.Name())
	assert.Equal(t, store.KindKeyValue, kv.Kind())
	assert.True(t, kv.IsOpen())

	require.NoError(t, kv.Put(ctx, []byte("k"), []byte("v")))

	value, err := kv.Get(ctx, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)

	_, err = kv.Get(ctx, []byte("missing"))
	assert.True(t, store.IsNotFound(err))

	require.NoError(t, kv.Delete(ctx, []byte("k")))
	_, err = kv.Get(ctx, []byte("k"))
	assert.True(t, store.IsNotFound(err))
}

func TestKeyValueStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	kv, err := OpenKeyValueStore("persistent", Options{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, []byte("k"), []byte("v")))
	require.NoError(t, kv.Close())
	assert.False(t, kv.IsOpen())

	reopened, err := OpenKeyValueStore("persistent", Options{Dir: dir})
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}

func TestKeyValueStoreRangeAndCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := openTestKV(t)
	for _, k := range []string{"c", "a", "d", "b"} {
		require.NoError(t, kv.Put(ctx, []byte(k), []byte("v-"+k)))
	}

	it, err := kv.Range(ctx, []byte("b"), []byte("c"))
	require.NoError(t, err)
	defer it.Close()

	var keys []string
	for it.Next() {
		keys = append(keys, string(it.Key()))
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []string{"b", "c"}, keys)

	n, err := kv.ApproximateNumEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), n)
}

func TestKeyValueStoreClosed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv, err := OpenKeyValueStore("closing", Options{InMemory: true})
	require.NoError(t, err)
	require.NoError(t, kv.Close())

	_, err = kv.Get(ctx, []byte("k"))
	assert.True(t, store.IsClosed(err))
	assert.True(t, store.IsClosed(kv.Put(ctx, []byte("k"), []byte("v"))))

	// Closing twice is a no-op
	require.NoError(t, kv.Close())
}

func TestKeyValueStoreContextCancellation(t *testing.T) {
	t.Parallel()

	kv := openTestKV(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := kv.Get(ctx, []byte("k"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTimestampedKeyValueStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ts := openTestTimestampedKV(t)
	assert.Equal(t, store.KindTimestampedKeyValue, ts.Kind())

	require.NoError(t, ts.Put(ctx, []byte("k"), store.ValueAndTimestamp{Value: []byte("v"), Timestamp: 1234}))

	vt, err := ts.Get(ctx, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), vt.Value)
	assert.Equal(t, int64(1234), vt.Timestamp)

	_, err = ts.Get(ctx, []byte("missing"))
	assert.True(t, store.IsNotFound(err))
}

func TestTimestampedKeyValueStoreRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ts := openTestTimestampedKV(t)
	require.NoError(t, ts.Put(ctx, []byte("a"), store.ValueAndTimestamp{Value: []byte("1"), Timestamp: 10}))
	require.NoError(t, ts.Put(ctx, []byte("b"), store.ValueAndTimestamp{Value: []byte("2"), Timestamp: 20}))

	it, err := ts.All(ctx)
	require.NoError(t, err)
	defer it.Close()

	require.True(t, it.Next())
	assert.Equal(t, []byte("a"), it.Key())
	assert.Equal(t, int64(10), it.Value().Timestamp)
	require.True(t, it.Next())
	assert.Equal(t, []byte("b"), it.Key())
	assert.Equal(t, int64(20), it.Value().Timestamp)
	assert.False(t, it.Next())
}
