package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	keepertest "github.com/burrow-chain/burrow/testutil/keeper"
	"github.com/burrow-chain/burrow/x/rewardvault/keeper"
	"github.com/burrow-chain/burrow/x/rewardvault/types"
)

func TestQueryCollectibles(t *testing.T) {
	k, ctx, nft := keepertest.RewardVaultKeeper(t)
	qs := keeper.NewQueryServerImpl(k)

	donate(t, k, ctx, nft, keepertest.TestAddress(0x01), "hero-1", "hero-2")
	_, _, err := k.SelectAndRemove(ctx, 0)
	require.NoError(t, err)

	all, err := qs.Collectibles(ctx, &types.QueryCollectiblesRequest{})
	require.NoError(t, err)
	require.Len(t, all.Records, 2)

	unclaimed, err := qs.Collectibles(ctx, &types.QueryCollectiblesRequest{UnclaimedOnly: true})
	require.NoError(t, err)
	require.Len(t, unclaimed.Records, 1)
	require.False(t, unclaimed.Records[0].Claimed)

	_, err = qs.Collectibles(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryUnclaimedCount(t *testing.T) {
	k, ctx, nft := keepertest.RewardVaultKeeper(t)
	qs := keeper.NewQueryServerImpl(k)

	donate(t, k, ctx, nft, keepertest.TestAddress(0x01), "hero-1", "hero-2", "hero-3")
	_, _, err := k.SelectAndRemove(ctx, 1)
	require.NoError(t, err)

	resp, err := qs.UnclaimedCount(ctx, &types.QueryUnclaimedCountRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(2), resp.Unclaimed)
	require.Equal(t, uint64(3), resp.TotalDonated)
}
