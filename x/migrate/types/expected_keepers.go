package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected bank keeper used for asset escrow.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
}

// LendingPoolKeeper is the custodian that earns yield on deposited assets.
// The orchestrator never trusts a deposit return value: credited receipt
// amounts are always measured as a balance delta around Deposit, because real
// custodians apply fees and rounding.
type LendingPoolKeeper interface {
	// ReceiptDenomFor returns the yield-bearing receipt denom for an
	// underlying denom, or false if the custodian has no mapping for it.
	ReceiptDenomFor(ctx context.Context, denom string) (string, bool)

	// Deposit commits amount of denom on behalf of beneficiary, crediting the
	// beneficiary with receipt tokens.
	Deposit(ctx context.Context, denom string, amount sdkmath.Int, beneficiary sdk.AccAddress) error

	// ReceiptBalanceOf returns holder's balance of a receipt denom.
	ReceiptBalanceOf(ctx context.Context, receiptDenom string, holder sdk.AccAddress) sdkmath.Int

	// WithdrawReceipt transfers amount of a receipt denom from the module's
	// custody to the given account.
	WithdrawReceipt(ctx context.Context, receiptDenom string, to sdk.AccAddress, amount sdkmath.Int) error
}

// WrappedSourceKeeper is the issuing system of a wrapped interest-bearing
// asset. Used only by the SourceUnwrap normalizer.
type WrappedSourceKeeper interface {
	// UnderlyingDenom returns the denom obtained by unwrapping wrappedDenom.
	UnderlyingDenom(ctx context.Context, wrappedDenom string) (string, bool)

	// Unwrap redeems amount of wrappedDenom held by the module account for
	// its underlying asset. The credited underlying amount is measured by the
	// caller as a balance delta, never assumed from a fixed exchange rate.
	Unwrap(ctx context.Context, wrappedDenom string, amount sdkmath.Int) error
}

// RewardVaultKeeper is the interface the migrate module consumes from the
// reward vault module.
type RewardVaultKeeper interface {
	// UnclaimedCount returns the number of collectibles still available.
	UnclaimedCount(ctx context.Context) uint64

	// SelectAndRemove picks randomWord mod unclaimed-count, marks the record
	// claimed and removes it from the unclaimed set in O(1).
	SelectAndRemove(ctx context.Context, randomWord uint64) (classID, nftID string, err error)

	// ReleaseCollectible transfers a vault-held collectible to the recipient.
	ReleaseCollectible(ctx context.Context, classID, nftID string, recipient sdk.AccAddress) error
}
