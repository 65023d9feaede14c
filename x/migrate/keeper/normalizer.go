package keeper

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

var (
	_ types.AssetNormalizer = DirectDepositNormalizer{}
	_ types.AssetNormalizer = SourceUnwrapNormalizer{}
)

// DirectDepositNormalizer is the default strategy: the presented asset
// already is the underlying asset the custodian accepts. It escrows the
// amount in the module account and returns it unchanged.
type DirectDepositNormalizer struct {
	bankKeeper types.BankKeeper
}

// NewDirectDepositNormalizer creates the default pass-through normalizer.
func NewDirectDepositNormalizer(bankKeeper types.BankKeeper) DirectDepositNormalizer {
	return DirectDepositNormalizer{bankKeeper: bankKeeper}
}

// Normalize implements types.AssetNormalizer
func (n DirectDepositNormalizer) Normalize(ctx sdk.Context, account sdk.AccAddress, denom string, amount sdkmath.Int) (string, sdkmath.Int, error) {
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := n.bankKeeper.SendCoinsFromAccountToModule(ctx, account, types.ModuleName, coins); err != nil {
		return "", sdkmath.ZeroInt(), err
	}
	return denom, amount, nil
}

// SourceUnwrapNormalizer supports wrapped interest-bearing deposit sources:
// it escrows the presented wrapped asset, redeems it through its issuing
// system, and reports the underlying amount actually obtained. The credited
// amount is measured as a balance delta across the unwrap call because
// issuers apply their own rounding.
type SourceUnwrapNormalizer struct {
	bankKeeper   types.BankKeeper
	sourceKeeper types.WrappedSourceKeeper
}

// NewSourceUnwrapNormalizer creates a normalizer for a wrapped deposit source.
func NewSourceUnwrapNormalizer(bankKeeper types.BankKeeper, sourceKeeper types.WrappedSourceKeeper) SourceUnwrapNormalizer {
	return SourceUnwrapNormalizer{
		bankKeeper:   bankKeeper,
		sourceKeeper: sourceKeeper,
	}
}

// Normalize implements types.AssetNormalizer
func (n SourceUnwrapNormalizer) Normalize(ctx sdk.Context, account sdk.AccAddress, denom string, amount sdkmath.Int) (string, sdkmath.Int, error) {
	underlying, ok := n.sourceKeeper.UnderlyingDenom(ctx, denom)
	if !ok {
		return "", sdkmath.ZeroInt(), types.ErrNoNormalizer.Wrapf("no underlying mapping for wrapped denom %s", denom)
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := n.bankKeeper.SendCoinsFromAccountToModule(ctx, account, types.ModuleName, coins); err != nil {
		return "", sdkmath.ZeroInt(), err
	}

	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	balanceBefore := n.bankKeeper.GetBalance(ctx, moduleAddr, underlying).Amount

	if err := n.sourceKeeper.Unwrap(ctx, denom, amount); err != nil {
		return "", sdkmath.ZeroInt(), err
	}

	balanceAfter := n.bankKeeper.GetBalance(ctx, moduleAddr, underlying).Amount
	obtained := balanceAfter.Sub(balanceBefore)
	if !obtained.IsPositive() {
		return "", sdkmath.ZeroInt(), types.ErrInvalidAmount.Wrapf("unwrapping %s%s yielded no underlying %s", amount, denom, underlying)
	}

	return underlying, obtained, nil
}
