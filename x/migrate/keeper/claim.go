package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

// ClaimResult describes a successfully closed position.
type ClaimResult struct {
	ReceiptDenom  string
	ReceiptAmount math.Int
}

// ClaimPosition closes a position once its cooldown has elapsed and pays the
// receipt balance out to the account. Claiming is independent of reward
// state: a position may be closed whether or not its randomness request was
// ever fulfilled, so an oracle outage can never freeze user funds.
func (k Keeper) ClaimPosition(ctx context.Context, account sdk.AccAddress, denom string) (ClaimResult, error) {
	var result ClaimResult
	err := k.WithPairLock(ctx, account, denom, "claim", func() error {
		var err error
		result, err = k.claimPosition(ctx, account, denom)
		return err
	})
	return result, err
}

func (k Keeper) claimPosition(ctx context.Context, account sdk.AccAddress, denom string) (ClaimResult, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	position, err := k.GetPosition(ctx, account, denom)
	if err != nil {
		return ClaimResult{}, err
	}

	if !position.IsOpen() {
		GetMigrateMetrics().RejectedTotal.WithLabelValues("nothing_to_claim").Inc()
		return ClaimResult{}, types.ErrNothingToClaim.Wrapf("pair %s/%s has no receipt balance", account, denom)
	}

	cooldown, err := k.CooldownPeriod(ctx)
	if err != nil {
		return ClaimResult{}, err
	}

	unlockTime := position.CooldownStart.Add(cooldown)
	if sdkCtx.BlockTime().Before(unlockTime) {
		GetMigrateMetrics().RejectedTotal.WithLabelValues("cooldown_active").Inc()
		return ClaimResult{}, types.ErrCooldownActive.Wrapf("pair %s/%s is locked until %s", account, denom, unlockTime)
	}

	receiptDenom := position.ReceiptDenom

	// Clear-before-transfer: the stored receipt amount is zeroed and
	// persisted before any funds leave custody, so a reentrant call observes
	// an empty position and cannot double-withdraw.
	amount := position.ReceiptAmount
	position.ReceiptAmount = math.ZeroInt()
	if err := k.SetPosition(ctx, account, position); err != nil {
		return ClaimResult{}, err
	}

	if err := k.lendingKeeper.WithdrawReceipt(ctx, receiptDenom, account, amount); err != nil {
		return ClaimResult{}, fmt.Errorf("withdraw %s%s: %w", amount, receiptDenom, err)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePositionClaimed,
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyReceiptDenom, receiptDenom),
			sdk.NewAttribute(types.AttributeKeyReceiptAmount, amount.String()),
		),
	)

	GetMigrateMetrics().ClaimsTotal.WithLabelValues(denom).Inc()

	return ClaimResult{
		ReceiptDenom:  receiptDenom,
		ReceiptAmount: amount,
	}, nil
}
