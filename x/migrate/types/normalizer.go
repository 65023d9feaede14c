package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetNormalizer converts an account's presented asset into the underlying
// asset and amount the lending pool accepts, taking custody of the presented
// funds in the module account along the way.
//
// This is the sole extension point for supporting additional deposit sources.
// New sources implement this interface and are registered on the keeper; the
// ledger itself never branches on the source kind.
type AssetNormalizer interface {
	// Normalize transfers amount of denom from account into module custody
	// and returns the underlying denom and the amount of it actually
	// obtained.
	Normalize(ctx sdk.Context, account sdk.AccAddress, denom string, amount sdkmath.Int) (underlyingDenom string, underlyingAmount sdkmath.Int, err error)
}
