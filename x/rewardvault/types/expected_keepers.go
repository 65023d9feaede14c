package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NFTKeeper defines the expected collectible keeper. The surface mirrors the
// cosmossdk.io/x/nft keeper so the vault can run against the SDK module or
// any custody backend implementing the same two calls.
type NFTKeeper interface {
	// GetOwner returns the current owner of a collectible.
	GetOwner(ctx context.Context, classID, nftID string) sdk.AccAddress

	// Transfer moves a collectible to a new owner without authorization
	// checks; callers authorize.
	Transfer(ctx context.Context, classID, nftID string, receiver sdk.AccAddress) error
}
