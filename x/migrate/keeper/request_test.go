package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/burrow-chain/burrow/testutil/keeper"
	migratekeeper "github.com/burrow-chain/burrow/x/migrate/keeper"
	"github.com/burrow-chain/burrow/x/migrate/types"
	vaultkeeper "github.com/burrow-chain/burrow/x/rewardvault/keeper"
)

var testOracle = keepertest.TestAddress(0xee)

// setupFulfillment opens a position with an outstanding randomness request
// and authorizes the test oracle.
func setupFulfillment(t *testing.T) (*migratekeeper.Keeper, *vaultkeeper.Keeper, sdk.Context, *keepertest.MigrateMocks, sdk.AccAddress, uint64) {
	t.Helper()

	k, vaultK, ctx, mocks, account := setupMigration(t, 1000, 1000)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.OracleAddress = testOracle.String()
	require.NoError(t, k.SetParams(ctx, params))

	result, err := k.MigratePosition(ctx, account, testDenom, math.NewInt(1000))
	require.NoError(t, err)

	return k, vaultK, ctx, mocks, account, result.RequestId
}

func TestFulfillRandomnessDistributesReward(t *testing.T) {
	k, vaultK, ctx, mocks, account, requestID := setupFulfillment(t)

	distribution, err := k.FulfillRandomness(ctx, testOracle, requestID, []uint64{7})
	require.NoError(t, err)
	require.Equal(t, account, distribution.Requester)
	require.Equal(t, testDenom, distribution.Denom)
	require.Equal(t, "burrow.heroes", distribution.ClassId)
	require.Equal(t, "hero-1", distribution.NftId)

	// The collectible now belongs to the requester.
	require.Equal(t, account, mocks.NFT.GetOwner(ctx, "burrow.heroes", "hero-1"))
	require.Equal(t, uint64(0), vaultK.UnclaimedCount(ctx))

	position, err := k.GetPosition(ctx, account, testDenom)
	require.NoError(t, err)
	require.True(t, position.RewardClaimed)
	require.Equal(t, uint64(0), position.OutstandingRequestId)

	// The route was consumed.
	_, found := k.GetRequestRoute(ctx, requestID)
	require.False(t, found)
}

func TestFulfillRandomnessReplay(t *testing.T) {
	k, _, ctx, _, _, requestID := setupFulfillment(t)

	_, err := k.FulfillRandomness(ctx, testOracle, requestID, []uint64{7})
	require.NoError(t, err)

	// A second delivery of the same id finds no live route.
	_, err = k.FulfillRandomness(ctx, testOracle, requestID, []uint64{7})
	require.ErrorIs(t, err, types.ErrInvalidRequestId)
}

func TestFulfillRandomnessUnknownRequest(t *testing.T) {
	k, _, ctx, _, _, _ := setupFulfillment(t)

	_, err := k.FulfillRandomness(ctx, testOracle, 999, []uint64{7})
	require.ErrorIs(t, err, types.ErrInvalidRequestId)
}

func TestFulfillRandomnessWrongOracle(t *testing.T) {
	k, _, ctx, _, _, requestID := setupFulfillment(t)

	impostor := keepertest.TestAddress(0xff)
	_, err := k.FulfillRandomness(ctx, impostor, requestID, []uint64{7})
	require.ErrorIs(t, err, types.ErrUnauthorizedOracle)

	// The route is still live for the real oracle.
	_, found := k.GetRequestRoute(ctx, requestID)
	require.True(t, found)
}

func TestFulfillRandomnessNoOracleConfigured(t *testing.T) {
	k, _, ctx, _, _, requestID := setupFulfillment(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.OracleAddress = ""
	require.NoError(t, k.SetParams(ctx, params))

	_, err = k.FulfillRandomness(ctx, testOracle, requestID, []uint64{7})
	require.ErrorIs(t, err, types.ErrUnauthorizedOracle)
}

func TestFulfillRandomnessEmptyWords(t *testing.T) {
	k, _, ctx, _, _, requestID := setupFulfillment(t)

	_, err := k.FulfillRandomness(ctx, testOracle, requestID, nil)
	require.ErrorIs(t, err, types.ErrEmptyRandomness)
}

func TestFulfillRandomnessStaleRequestId(t *testing.T) {
	k, _, ctx, _, account, requestID := setupFulfillment(t)

	// Simulate a stale callback: the position has moved on to a different
	// outstanding request while the old route is still in flight.
	position, err := k.GetPosition(ctx, account, testDenom)
	require.NoError(t, err)
	position.OutstandingRequestId = requestID + 1
	require.NoError(t, k.SetPosition(ctx, account, position))

	_, err = k.FulfillRandomness(ctx, testOracle, requestID, []uint64{7})
	require.ErrorIs(t, err, types.ErrRequestIdMismatch)
}

func TestFulfillRandomnessAlreadyRewardedPair(t *testing.T) {
	k, _, ctx, _, account, requestID := setupFulfillment(t)

	position, err := k.GetPosition(ctx, account, testDenom)
	require.NoError(t, err)
	position.RewardClaimed = true
	require.NoError(t, k.SetPosition(ctx, account, position))

	_, err = k.FulfillRandomness(ctx, testOracle, requestID, []uint64{7})
	require.ErrorIs(t, err, types.ErrRewardAlreadyClaimed)
}

func TestRemigrateAfterClaimConsumesStaleRoute(t *testing.T) {
	k, _, ctx, mocks, account, firstID := setupFulfillment(t)

	// Claim the matured position while its randomness request is still
	// unfulfilled, then open the pair again.
	mature := ctx.WithBlockTime(keepertest.MigrateTestTime.Add(30 * 24 * time.Hour))
	_, err := k.ClaimPosition(mature, account, testDenom)
	require.NoError(t, err)

	mocks.Bank.AddBalance(account, sdk.NewCoin(testDenom, math.NewInt(1000)))
	result, err := k.MigratePosition(mature, account, testDenom, math.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, firstID+1, result.RequestId)

	// The abandoned route was consumed; only the live one remains.
	_, found := k.GetRequestRoute(mature, firstID)
	require.False(t, found)
	routes, err := k.GetAllRequestRoutes(mature)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	require.Equal(t, result.RequestId, routes[0].RequestId)

	_, broken := migratekeeper.AllInvariants(*k)(mature)
	require.False(t, broken)

	// A late oracle callback for the abandoned id finds no route.
	_, err = k.FulfillRandomness(mature, testOracle, firstID, []uint64{7})
	require.ErrorIs(t, err, types.ErrInvalidRequestId)
}

func TestFulfillRandomnessUsesFirstWordModuloCount(t *testing.T) {
	k, vaultK, ctx, mocks, account, requestID := setupFulfillment(t)

	donor := keepertest.TestAddress(0x02)
	mocks.NFT.Mint("burrow.heroes", "hero-2", donor)
	require.NoError(t, vaultK.Donate(ctx, donor, "burrow.heroes", "hero-2"))
	mocks.NFT.Mint("burrow.heroes", "hero-3", donor)
	require.NoError(t, vaultK.Donate(ctx, donor, "burrow.heroes", "hero-3"))

	// Three unclaimed, word 4 -> slot 1 -> hero-2.
	distribution, err := k.FulfillRandomness(ctx, testOracle, requestID, []uint64{4})
	require.NoError(t, err)
	require.Equal(t, "hero-2", distribution.NftId)
	require.Equal(t, account, mocks.NFT.GetOwner(ctx, "burrow.heroes", "hero-2"))
	require.Equal(t, uint64(2), vaultK.UnclaimedCount(ctx))
}
