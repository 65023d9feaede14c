package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/burrow-chain/burrow/x/rewardvault/keeper"
	"github.com/burrow-chain/burrow/x/rewardvault/types"
)

// RewardVaultKeeper creates a test keeper for the reward vault module backed
// by an in-memory store and a mock collectible registry.
func RewardVaultKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *MockNFTKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	nftKeeper := NewMockNFTKeeper()

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		nftKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Unix(1700000000, 0).UTC()}, false, log.NewNopLogger())

	k.InitGenesis(ctx, *types.DefaultGenesis())

	return k, ctx, nftKeeper
}
