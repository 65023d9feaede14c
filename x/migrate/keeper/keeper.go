package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

// Keeper of the migrate store. It owns the position ledger, the randomness
// request routing table and the per-denom minimum deposits, and orchestrates
// the lending pool, reward vault and asset normalizers around them.
type Keeper struct {
	storeKey  storetypes.StoreKey
	cdc       codec.BinaryCodec
	authority string

	bankKeeper    types.BankKeeper
	lendingKeeper types.LendingPoolKeeper
	vaultKeeper   types.RewardVaultKeeper

	// normalizers maps a presented denom to the strategy that converts it to
	// the custodian's underlying asset. Denoms with no entry fall back to
	// defaultNormalizer (direct deposit).
	normalizers       map[string]types.AssetNormalizer
	defaultNormalizer types.AssetNormalizer
}

// NewKeeper creates a new migrate Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	authority string,
	bankKeeper types.BankKeeper,
	lendingKeeper types.LendingPoolKeeper,
	vaultKeeper types.RewardVaultKeeper,
) *Keeper {
	k := &Keeper{
		storeKey:      key,
		cdc:           cdc,
		authority:     authority,
		bankKeeper:    bankKeeper,
		lendingKeeper: lendingKeeper,
		vaultKeeper:   vaultKeeper,
		normalizers:   make(map[string]types.AssetNormalizer),
	}
	k.defaultNormalizer = NewDirectDepositNormalizer(bankKeeper)
	return k
}

// GetAuthority returns the module's authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the migrate module account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// RegisterNormalizer installs an asset normalizer for a presented denom,
// overriding the default direct-deposit strategy. This is the extension point
// for alternate deposit sources; the ledger never branches on source kind.
func (k *Keeper) RegisterNormalizer(denom string, normalizer types.AssetNormalizer) {
	k.normalizers[denom] = normalizer
}

// normalizerFor returns the normalizer registered for denom, or the default.
func (k Keeper) normalizerFor(denom string) types.AssetNormalizer {
	if n, ok := k.normalizers[denom]; ok {
		return n
	}
	return k.defaultNormalizer
}

// getStore returns the KVStore for the migrate module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}
