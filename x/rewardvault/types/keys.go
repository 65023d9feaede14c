package types

import (
	"encoding/binary"
)

var (
	// RecordKeyPrefix is the prefix for arena record store keys
	RecordKeyPrefix = []byte{0x01}

	// RecordCountKey is the key for the total donated record counter
	RecordCountKey = []byte{0x02}

	// UnclaimedSlotKeyPrefix is the prefix for unclaimed index set slots
	UnclaimedSlotKeyPrefix = []byte{0x03}

	// UnclaimedCountKey is the key for the unclaimed set size
	UnclaimedCountKey = []byte{0x04}
)

// RecordKey returns the store key for an arena record by index.
func RecordKey(index uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, index)
	return append(RecordKeyPrefix, bz...)
}

// UnclaimedSlotKey returns the store key for a slot of the unclaimed index
// set. Slot i holds the arena index of one unclaimed record; slots are dense
// in [0, unclaimedCount).
func UnclaimedSlotKey(slot uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, slot)
	return append(UnclaimedSlotKeyPrefix, bz...)
}
