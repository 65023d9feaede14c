package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordKey(t *testing.T) {
	require.Equal(t, append([]byte{0x01}, 0, 0, 0, 0, 0, 0, 0, 0), RecordKey(0))
	require.NotEqual(t, RecordKey(1), RecordKey(256))

	// Big-endian encoding keeps arena keys in index order.
	require.Equal(t, -1, bytes.Compare(RecordKey(1), RecordKey(2)))
	require.Equal(t, -1, bytes.Compare(RecordKey(255), RecordKey(256)))
}

func TestUnclaimedSlotKeyDistinctFromRecordKey(t *testing.T) {
	// Same index must never collide across the two keyspaces.
	require.NotEqual(t, RecordKey(7), UnclaimedSlotKey(7))
}
