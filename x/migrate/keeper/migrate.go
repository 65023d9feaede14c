package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

// MigrationResult describes a successfully opened position.
type MigrationResult struct {
	ReceiptDenom  string
	ReceiptAmount math.Int
	RequestId     uint64
}

// MigratePosition commits an account's asset into a yield-bearing custodial
// position and issues a randomness request for the collectible reward draw.
//
// The whole flow runs under the pair's reentrancy lock because it calls into
// two external systems (normalizer and custodian) before the ledger state is
// finalized. Ordering of checks matters: every precondition is verified
// before any funds move, so a failed migration leaves no residue.
func (k Keeper) MigratePosition(ctx context.Context, account sdk.AccAddress, denom string, amount math.Int) (MigrationResult, error) {
	var result MigrationResult
	err := k.WithPairLock(ctx, account, denom, "migrate", func() error {
		var err error
		result, err = k.migratePosition(ctx, account, denom, amount)
		return err
	})
	return result, err
}

func (k Keeper) migratePosition(ctx context.Context, account sdk.AccAddress, denom string, amount math.Int) (MigrationResult, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	metrics := GetMigrateMetrics()

	minimum, configured := k.GetMinimumDeposit(ctx, denom)
	if !configured || !minimum.IsPositive() {
		metrics.RejectedTotal.WithLabelValues("unsupported_denom").Inc()
		return MigrationResult{}, types.ErrTokenNotSupported.Wrapf("no minimum deposit configured for %s", denom)
	}

	if amount.LT(minimum) {
		metrics.RejectedTotal.WithLabelValues("below_minimum").Inc()
		return MigrationResult{}, types.ErrPositionTooSmall.Wrapf("%s: amount %s below minimum %s", denom, amount, minimum)
	}

	position, err := k.GetPosition(ctx, account, denom)
	if err != nil {
		return MigrationResult{}, err
	}

	// One reward per pair, forever. The flag survives the position being
	// closed, so a pair that was ever rewarded can never migrate again.
	if position.RewardClaimed {
		metrics.RejectedTotal.WithLabelValues("reward_claimed").Inc()
		return MigrationResult{}, types.ErrRewardAlreadyClaimed.Wrapf("pair %s/%s already received its reward", account, denom)
	}

	if position.IsOpen() {
		metrics.RejectedTotal.WithLabelValues("position_open").Inc()
		return MigrationResult{}, types.ErrInvalidPosition.Wrapf("pair %s/%s already has an open position", account, denom)
	}

	// Fail fast while the vault is empty: there is no point opening a
	// position nobody can be rewarded for. Checked before any funds move.
	if k.vaultKeeper.UnclaimedCount(ctx) == 0 {
		metrics.RejectedTotal.WithLabelValues("vault_empty").Inc()
		return MigrationResult{}, types.ErrNoRewardsAvailable.Wrap("reward vault is empty")
	}

	// A request left pending when this pair last closed can never be
	// fulfilled once a new id is issued; consume its route here so the
	// routing table only ever holds fulfillable entries.
	if position.OutstandingRequestId != 0 {
		k.consumeRequestRoute(ctx, position.OutstandingRequestId)
	}

	underlyingDenom, underlyingAmount, err := k.normalizerFor(denom).Normalize(sdkCtx, account, denom, amount)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("normalize %s: %w", denom, err)
	}

	receiptDenom, supported := k.lendingKeeper.ReceiptDenomFor(ctx, underlyingDenom)
	if !supported {
		metrics.RejectedTotal.WithLabelValues("unsupported_denom").Inc()
		return MigrationResult{}, types.ErrTokenNotSupported.Wrapf("lending pool has no receipt mapping for %s", underlyingDenom)
	}

	// Credit the receipt delta actually observed, never the nominal deposit
	// amount: custodians apply fees and rounding on their side.
	moduleAddr := k.GetModuleAddress()
	balanceBefore := k.lendingKeeper.ReceiptBalanceOf(ctx, receiptDenom, moduleAddr)

	if err := k.lendingKeeper.Deposit(ctx, underlyingDenom, underlyingAmount, moduleAddr); err != nil {
		return MigrationResult{}, fmt.Errorf("lending pool deposit %s%s: %w", underlyingAmount, underlyingDenom, err)
	}

	balanceAfter := k.lendingKeeper.ReceiptBalanceOf(ctx, receiptDenom, moduleAddr)
	credited := balanceAfter.Sub(balanceBefore)
	if !credited.IsPositive() {
		metrics.RejectedTotal.WithLabelValues("zero_credit").Inc()
		return MigrationResult{}, types.ErrInvalidAmount.Wrapf("deposit of %s%s credited no receipt tokens", underlyingAmount, underlyingDenom)
	}

	requestID := k.NextRequestID(ctx)
	if err := k.SetRequestRoute(ctx, types.RequestRoute{
		RequestId: requestID,
		Requester: account.String(),
		Denom:     denom,
	}); err != nil {
		return MigrationResult{}, err
	}

	position.Account = account.String()
	position.Denom = denom
	position.ReceiptDenom = receiptDenom
	position.ReceiptAmount = credited
	position.CooldownStart = sdkCtx.BlockTime()
	position.OutstandingRequestId = requestID
	if err := k.SetPosition(ctx, account, position); err != nil {
		return MigrationResult{}, err
	}

	cooldown, err := k.CooldownPeriod(ctx)
	if err != nil {
		return MigrationResult{}, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePositionOpened,
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyReceiptDenom, receiptDenom),
			sdk.NewAttribute(types.AttributeKeyReceiptAmount, credited.String()),
			sdk.NewAttribute(types.AttributeKeyCooldownEnd, position.CooldownStart.Add(cooldown).String()),
		),
	)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRandomnessRequested,
			sdk.NewAttribute(types.AttributeKeyRequestId, fmt.Sprintf("%d", requestID)),
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
		),
	)

	metrics.MigrationsTotal.WithLabelValues(denom).Inc()

	return MigrationResult{
		ReceiptDenom:  receiptDenom,
		ReceiptAmount: credited,
		RequestId:     requestID,
	}, nil
}
