package types

import (
	"cosmossdk.io/errors"
)

// Reward vault module sentinel errors
var (
	ErrNoRewardsAvailable   = errors.Register(ModuleName, 1, "no unclaimed collectibles in vault")
	ErrRewardAlreadyClaimed = errors.Register(ModuleName, 2, "collectible already claimed")
	ErrArrayLengthMismatch  = errors.Register(ModuleName, 3, "class and nft id lists differ in length")
	ErrInvalidAddress       = errors.Register(ModuleName, 4, "invalid address")
	ErrInvalidCollectible   = errors.Register(ModuleName, 5, "invalid collectible")
	ErrNotCollectibleOwner  = errors.Register(ModuleName, 6, "caller does not own the collectible")
	ErrRecordNotFound       = errors.Register(ModuleName, 7, "arena record not found")
)
