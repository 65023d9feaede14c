package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

var (
	// PositionKeyPrefix is the prefix for position store keys
	PositionKeyPrefix = []byte{0x01}

	// RequestRouteKeyPrefix is the prefix for randomness request routes
	RequestRouteKeyPrefix = []byte{0x02}

	// MinimumDepositKeyPrefix is the prefix for per-denom minimum deposits
	MinimumDepositKeyPrefix = []byte{0x03}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x04}

	// RequestCountKey is the key for the randomness request id counter
	RequestCountKey = []byte{0x05}

	// ReentrancyLockKeyPrefix is the prefix for reentrancy protection locks
	ReentrancyLockKeyPrefix = []byte{0x06}
)

// PositionKey returns the store key for a position by account and denom.
// The account is length-prefixed so a crafted denom cannot collide with
// another account's key.
func PositionKey(account sdk.AccAddress, denom string) []byte {
	key := append(PositionKeyPrefix, address.MustLengthPrefix(account)...)
	return append(key, []byte(denom)...)
}

// RequestRouteKey returns the store key for a request route by request id.
func RequestRouteKey(requestID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, requestID)
	return append(RequestRouteKeyPrefix, bz...)
}

// MinimumDepositKey returns the store key for a denom's minimum deposit.
func MinimumDepositKey(denom string) []byte {
	return append(MinimumDepositKeyPrefix, []byte(denom)...)
}

// ReentrancyLockKey returns the store key for a named reentrancy lock.
func ReentrancyLockKey(lockKey string) []byte {
	return append(ReentrancyLockKeyPrefix, []byte(lockKey)...)
}
