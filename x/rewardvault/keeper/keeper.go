package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/burrow-chain/burrow/x/rewardvault/types"
)

// Keeper of the reward vault store. It holds the append-only collectible
// arena plus the dense unclaimed index set that makes uniform random
// selection and removal constant time.
type Keeper struct {
	storeKey  storetypes.StoreKey
	cdc       codec.BinaryCodec
	nftKeeper types.NFTKeeper
}

// NewKeeper creates a new reward vault Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	nftKeeper types.NFTKeeper,
) *Keeper {
	return &Keeper{
		storeKey:  key,
		cdc:       cdc,
		nftKeeper: nftKeeper,
	}
}

// GetModuleAddress returns the reward vault module account address. Donated
// collectibles are held in custody here until released.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// getStore returns the KVStore for the reward vault module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}
