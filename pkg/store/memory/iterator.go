package memory

// Iterators over materialized snapshots. All reads copy the matching entries
// under the store lock, so iteration never observes later mutations and
// never fails mid-way (Err is always nil).

type sliceIterator[V any] struct {
	keys   [][]byte
	values []V
	pos    int
}

func newSliceIterator[V any](keys [][]byte, values []V) *sliceIterator[V] {
	return &sliceIterator[V]{keys: keys, values: values, pos: -1}
}

func (it *sliceIterator[V]) Next() bool {
	if it.pos+1 >= len(it.keys) {
		return false
	}
	it.pos++
	return true
}

func (it *sliceIterator[V]) Key() []byte { return it.keys[it.pos] }
func (it *sliceIterator[V]) Value() V    { return it.values[it.pos] }
func (it *sliceIterator[V]) Err() error  { return nil }
func (it *sliceIterator[V]) Close() error {
	it.pos = len(it.keys)
	return nil
}

type windowIterator[V any] struct {
	starts []int64
	values []V
	pos    int
}

func newWindowIterator[V any](starts []int64, values []V) *windowIterator[V] {
	return &windowIterator[V]{starts: starts, values: values, pos: -1}
}

func (it *windowIterator[V]) Next() bool {
	if it.pos+1 >= len(it.starts) {
		return false
	}
	it.pos++
	return true
}

func (it *windowIterator[V]) WindowStart() int64 { return it.starts[it.pos] }
func (it *windowIterator[V]) Value() V           { return it.values[it.pos] }
func (it *windowIterator[V]) Err() error         { return nil }
func (it *windowIterator[V]) Close() error {
	it.pos = len(it.starts)
	return nil
}

type sessionIterator struct {
	sessions []sessionEntry
	pos      int
}

func newSessionIterator(sessions []sessionEntry) *sessionIterator {
	return &sessionIterator{sessions: sessions, pos: -1}
}

func (it *sessionIterator) Next() bool {
	if it.pos+1 >= len(it.sessions) {
		return false
	}
	it.pos++
	return true
}

func (it *sessionIterator) SessionStart() int64 { return it.sessions[it.pos].start }
func (it *sessionIterator) SessionEnd() int64   { return it.sessions[it.pos].end }
func (it *sessionIterator) Value() []byte       { return it.sessions[it.pos].value }
func (it *sessionIterator) Err() error          { return nil }
func (it *sessionIterator) Close() error {
	it.pos = len(it.sessions)
	return nil
}
