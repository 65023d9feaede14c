package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/burrow-chain/burrow/testutil/keeper"
	"github.com/burrow-chain/burrow/x/migrate/keeper"
	"github.com/burrow-chain/burrow/x/migrate/types"
)

func TestInvariantsHoldThroughLifecycle(t *testing.T) {
	k, _, ctx, _, account := setupMigration(t, 1000, 1000)

	_, broken := keeper.AllInvariants(*k)(ctx)
	require.False(t, broken)

	_, err := k.MigratePosition(ctx, account, testDenom, math.NewInt(1000))
	require.NoError(t, err)

	_, broken = keeper.AllInvariants(*k)(ctx)
	require.False(t, broken)
}

func TestRequestRoutesInvariantDetectsDanglingRoute(t *testing.T) {
	k, _, ctx, _ := keepertest.MigrateKeeper(t)

	// A route with no matching position outstanding id is dangling.
	require.NoError(t, k.SetRequestRoute(ctx, types.RequestRoute{
		RequestId: 1,
		Requester: keepertest.TestAddress(0x01).String(),
		Denom:     testDenom,
	}))
	k.SetNextRequestID(ctx, 2)

	_, broken := keeper.RequestRoutesInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestOpenPositionsInvariantDetectsMissingCooldown(t *testing.T) {
	k, _, ctx, _ := keepertest.MigrateKeeper(t)
	account := keepertest.TestAddress(0x01)

	position := types.Position{
		Account:       account.String(),
		Denom:         testDenom,
		ReceiptDenom:  testReceiptDenom,
		ReceiptAmount: math.NewInt(100),
	}
	require.NoError(t, k.SetPosition(ctx, account, position))

	_, broken := keeper.OpenPositionsInvariant(*k)(ctx)
	require.True(t, broken)
}
