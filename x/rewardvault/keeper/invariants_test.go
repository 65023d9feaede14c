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

	"github.com/burrow-chain/burrow/x/rewardvault/types"
)

// invariantTestKeeper builds a keeper in-package so tests can corrupt the
// store through the unexported setters the invariants are meant to catch.
func invariantTestKeeper(t testing.TB) (*Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	k := NewKeeper(cdc, storeKey, nil)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Unix(1700000000, 0).UTC()}, false, log.NewNopLogger())
	return k, ctx
}

func TestConservationInvariantCleanState(t *testing.T) {
	k, ctx := invariantTestKeeper(t)

	require.NoError(t, k.appendRecord(ctx, types.CollectibleRecord{ClassId: "c", NftId: "1"}))
	require.NoError(t, k.appendRecord(ctx, types.CollectibleRecord{ClassId: "c", NftId: "2"}))

	_, broken := ConservationInvariant(*k)(ctx)
	require.False(t, broken)
	_, broken = UnclaimedSetInvariant(*k)(ctx)
	require.False(t, broken)
}

func TestConservationInvariantDetectsCountDrift(t *testing.T) {
	k, ctx := invariantTestKeeper(t)

	require.NoError(t, k.appendRecord(ctx, types.CollectibleRecord{ClassId: "c", NftId: "1"}))

	// Claim the record without shrinking the unclaimed set.
	require.NoError(t, k.setRecord(ctx, 0, types.CollectibleRecord{ClassId: "c", NftId: "1", Claimed: true}))

	_, broken := ConservationInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestConservationInvariantDetectsMissingRecord(t *testing.T) {
	k, ctx := invariantTestKeeper(t)

	// Counter says two records exist but only one was ever written.
	require.NoError(t, k.appendRecord(ctx, types.CollectibleRecord{ClassId: "c", NftId: "1"}))
	k.setTotalDonated(ctx, 2)

	_, broken := ConservationInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestUnclaimedSetInvariantDetectsDuplicateSlot(t *testing.T) {
	k, ctx := invariantTestKeeper(t)

	require.NoError(t, k.appendRecord(ctx, types.CollectibleRecord{ClassId: "c", NftId: "1"}))
	require.NoError(t, k.appendRecord(ctx, types.CollectibleRecord{ClassId: "c", NftId: "2"}))

	// Point both slots at arena index 0.
	k.setUnclaimedSlot(ctx, 1, 0)

	_, broken := UnclaimedSetInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestUnclaimedSetInvariantDetectsClaimedTarget(t *testing.T) {
	k, ctx := invariantTestKeeper(t)

	require.NoError(t, k.appendRecord(ctx, types.CollectibleRecord{ClassId: "c", NftId: "1"}))
	require.NoError(t, k.setRecord(ctx, 0, types.CollectibleRecord{ClassId: "c", NftId: "1", Claimed: true}))

	_, broken := UnclaimedSetInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestUnclaimedSetInvariantDetectsMissingSlot(t *testing.T) {
	k, ctx := invariantTestKeeper(t)

	require.NoError(t, k.appendRecord(ctx, types.CollectibleRecord{ClassId: "c", NftId: "1"}))
	k.deleteUnclaimedSlot(ctx, 0)

	_, broken := UnclaimedSetInvariant(*k)(ctx)
	require.True(t, broken)
}
