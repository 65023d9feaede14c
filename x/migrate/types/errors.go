package types

import (
	"cosmossdk.io/errors"
)

// Migrate module sentinel errors
var (
	ErrTokenNotSupported    = errors.Register(ModuleName, 1, "token not supported by lending pool")
	ErrPositionTooSmall     = errors.Register(ModuleName, 2, "deposit below configured minimum")
	ErrRewardAlreadyClaimed = errors.Register(ModuleName, 3, "reward already claimed")
	ErrNoRewardsAvailable   = errors.Register(ModuleName, 4, "no rewards available in vault")
	ErrCooldownActive       = errors.Register(ModuleName, 5, "cooldown period still active")
	ErrInvalidRequestId     = errors.Register(ModuleName, 6, "unknown randomness request id")
	ErrRequestIdMismatch    = errors.Register(ModuleName, 7, "request id does not match outstanding request")
	ErrNothingToClaim       = errors.Register(ModuleName, 8, "position holds no receipt balance")
	ErrUnauthorizedOracle   = errors.Register(ModuleName, 9, "caller is not the authorized randomness oracle")
	ErrUnauthorized         = errors.Register(ModuleName, 10, "unauthorized")
	ErrInvalidAddress       = errors.Register(ModuleName, 11, "invalid address")
	ErrInvalidDenom         = errors.Register(ModuleName, 12, "invalid denomination")
	ErrInvalidAmount        = errors.Register(ModuleName, 13, "invalid amount")
	ErrInvalidPosition      = errors.Register(ModuleName, 14, "invalid position state")
	ErrReentrancy           = errors.Register(ModuleName, 15, "reentrancy detected")
	ErrNoNormalizer         = errors.Register(ModuleName, 16, "no asset normalizer registered for denom")
	ErrEmptyRandomness      = errors.Register(ModuleName, 17, "fulfillment carried no random words")
)
