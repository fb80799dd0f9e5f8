package badger

import (
	"encoding/binary"

	"github.com/statequery/statequery/pkg/store"
)

// Timestamped values are stored as an 8-byte big-endian epoch-millisecond
// timestamp followed by the raw value bytes. A missing value is stored as
// the 8-byte timestamp alone.

const timestampSize = 8

func encodeValueAndTimestamp(vt store.ValueAndTimestamp) []byte {
	buf := make([]byte, timestampSize+len(vt.Value))
	binary.BigEndian.PutUint64(buf, uint64(vt.Timestamp))
	copy(buf[timestampSize:], vt.Value)
	return buf
}

func decodeValueAndTimestamp(name string, raw []byte) (*store.ValueAndTimestamp, error) {
	if len(raw) < timestampSize {
		return nil, store.NewInvalidArgumentError(name, "stored value shorter than timestamp prefix")
	}
	vt := &store.ValueAndTimestamp{
		Timestamp: int64(binary.BigEndian.Uint64(raw)),
	}
	if len(raw) > timestampSize {
		vt.Value = raw[timestampSize:]
	}
	return vt, nil
}
