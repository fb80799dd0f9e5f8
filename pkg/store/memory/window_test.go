package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statequery/statequery/pkg/store"
)

func TestWindowStoreFetchBounds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	w := NewWindowStore("w")
	assert.Equal(t, store.KindWindow, w.Kind())

	for _, start := range []int64{0, 10, 20, 30} {
		require.NoError(t, w.Put(ctx, []byte("k"), start, []byte{byte(start)}))
	}

	tests := []struct {
		name string
		from int64
		to   int64
		want []int64
	}{
		{"all", 0, 30, []int64{0, 10, 20, 30}},
		{"inner", 10, 20, []int64{10, 20}},
		{"inclusive bounds", 10, 29, []int64{10, 20}},
		{"empty", 31, 100, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := w.Fetch(ctx, []byte("k"), tt.from, tt.to)
			require.NoError(t, err)
			defer it.Close()

			var got []int64
			for it.Next() {
				got = append(got, it.WindowStart())
			}
			require.NoError(t, it.Err())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindowStorePutReplacesWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	w := NewWindowStore("w")
	require.NoError(t, w.Put(ctx, []byte("k"), 10, []byte("old")))
	require.NoError(t, w.Put(ctx, []byte("k"), 10, []byte("new")))

	it, err := w.Fetch(ctx, []byte("k"), 10, 10)
	require.NoError(t, err)
	defer it.Close()

	require.True(t, it.Next())
	assert.Equal(t, []byte("new"), it.Value())
	assert.False(t, it.Next())
}

func TestWindowStoreFetchUnknownKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	w := NewWindowStore("w")

	it, err := w.FetchAll(ctx, []byte("missing"))
	require.NoError(t, err)
	defer it.Close()
	assert.False(t, it.Next())
}

func TestWindowStoreClosed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	w := NewWindowStore("w")
	require.NoError(t, w.Close())
	assert.False(t, w.IsOpen())

	assert.True(t, store.IsClosed(w.Put(ctx, []byte("k"), 0, []byte("v"))))
	_, err := w.Fetch(ctx, []byte("k"), 0, 10)
	assert.True(t, store.IsClosed(err))
}

func TestTimestampedWindowStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ts := NewTimestampedWindowStore("ts-w")
	assert.Equal(t, store.KindTimestampedWindow, ts.Kind())

	require.NoError(t, ts.Put(ctx, []byte("k"), 10, store.ValueAndTimestamp{Value: []byte("v"), Timestamp: 12}))

	it, err := ts.Fetch(ctx, []byte("k"), 0, 100)
	require.NoError(t, err)
	defer it.Close()

	require.True(t, it.Next())
	assert.Equal(t, int64(10), it.WindowStart())
	assert.Equal(t, []byte("v"), it.Value().Value)
	assert.Equal(t, int64(12), it.Value().Timestamp)
	assert.False(t, it.Next())
}

func TestTimestampedWindowStoreClosed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ts := NewTimestampedWindowStore("ts-w")
	require.NoError(t, ts.Close())

	_, err := ts.FetchAll(ctx, []byte("k"))
	assert.True(t, store.IsClosed(err))
}
