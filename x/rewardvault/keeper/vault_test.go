package keeper_test

import (
	"fmt"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/burrow-chain/burrow/testutil/keeper"
	"github.com/burrow-chain/burrow/x/rewardvault/keeper"
	"github.com/burrow-chain/burrow/x/rewardvault/types"
)

const testClass = "burrow.heroes"

func donate(t *testing.T, k *keeper.Keeper, ctx sdk.Context, nft *keepertest.MockNFTKeeper, donor sdk.AccAddress, ids ...string) {
	t.Helper()
	for _, id := range ids {
		nft.Mint(testClass, id, donor)
		require.NoError(t, k.Donate(ctx, donor, testClass, id))
	}
}

func TestDonateTakesCustody(t *testing.T) {
	k, ctx, nft := keepertest.RewardVaultKeeper(t)
	donor := keepertest.TestAddress(0x01)

	donate(t, k, ctx, nft, donor, "hero-1")

	require.Equal(t, uint64(1), k.TotalDonated(ctx))
	require.Equal(t, uint64(1), k.UnclaimedCount(ctx))
	require.Equal(t, k.GetModuleAddress(), nft.GetOwner(ctx, testClass, "hero-1"))

	record, ok := k.GetRecord(ctx, 0)
	require.True(t, ok)
	require.Equal(t, testClass, record.ClassId)
	require.Equal(t, "hero-1", record.NftId)
	require.False(t, record.Claimed)
}

func TestDonateRequiresOwnership(t *testing.T) {
	k, ctx, nft := keepertest.RewardVaultKeeper(t)
	owner := keepertest.TestAddress(0x01)
	thief := keepertest.TestAddress(0x02)

	nft.Mint(testClass, "hero-1", owner)

	err := k.Donate(ctx, thief, testClass, "hero-1")
	require.ErrorIs(t, err, types.ErrNotCollectibleOwner)
	require.Equal(t, uint64(0), k.TotalDonated(ctx))
}

func TestDonateNonexistentCollectible(t *testing.T) {
	k, ctx, _ := keepertest.RewardVaultKeeper(t)
	donor := keepertest.TestAddress(0x01)

	err := k.Donate(ctx, donor, testClass, "ghost")
	require.ErrorIs(t, err, types.ErrNotCollectibleOwner)
}

func TestDonateBatch(t *testing.T) {
	k, ctx, nft := keepertest.RewardVaultKeeper(t)
	donor := keepertest.TestAddress(0x01)

	nft.Mint(testClass, "hero-1", donor)
	nft.Mint(testClass, "hero-2", donor)

	donated, err := k.DonateBatch(ctx, donor, []string{testClass, testClass}, []string{"hero-1", "hero-2"})
	require.NoError(t, err)
	require.Equal(t, uint64(2), donated)
	require.Equal(t, uint64(2), k.UnclaimedCount(ctx))
}

func TestDonateBatchLengthMismatch(t *testing.T) {
	k, ctx, _ := keepertest.RewardVaultKeeper(t)
	donor := keepertest.TestAddress(0x01)

	_, err := k.DonateBatch(ctx, donor, []string{testClass}, []string{"hero-1", "hero-2"})
	require.ErrorIs(t, err, types.ErrArrayLengthMismatch)
}

func TestSelectAndRemoveEmptyVault(t *testing.T) {
	k, ctx, _ := keepertest.RewardVaultKeeper(t)

	_, _, err := k.SelectAndRemove(ctx, 0)
	require.ErrorIs(t, err, types.ErrNoRewardsAvailable)
}

func TestSelectAndRemoveSingle(t *testing.T) {
	k, ctx, nft := keepertest.RewardVaultKeeper(t)
	donate(t, k, ctx, nft, keepertest.TestAddress(0x01), "hero-1")

	classID, nftID, err := k.SelectAndRemove(ctx, 987654321)
	require.NoError(t, err)
	require.Equal(t, testClass, classID)
	require.Equal(t, "hero-1", nftID)

	require.Equal(t, uint64(0), k.UnclaimedCount(ctx))
	require.Equal(t, uint64(1), k.TotalDonated(ctx))

	record, ok := k.GetRecord(ctx, 0)
	require.True(t, ok)
	require.True(t, record.Claimed)
}

func TestSelectAndRemoveUsesModulo(t *testing.T) {
	k, ctx, nft := keepertest.RewardVaultKeeper(t)
	donate(t, k, ctx, nft, keepertest.TestAddress(0x01), "hero-1", "hero-2", "hero-3")

	// word 7 mod 3 = slot 1 -> hero-2
	_, nftID, err := k.SelectAndRemove(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "hero-2", nftID)

	// hero-3 was swapped into slot 1. word 1 mod 2 = slot 1 -> hero-3.
	_, nftID, err = k.SelectAndRemove(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "hero-3", nftID)

	// Only hero-1 remains.
	_, nftID, err = k.SelectAndRemove(ctx, 12345)
	require.NoError(t, err)
	require.Equal(t, "hero-1", nftID)

	_, _, err = k.SelectAndRemove(ctx, 0)
	require.ErrorIs(t, err, types.ErrNoRewardsAvailable)
}

func TestSelectAndRemoveNeverRepeats(t *testing.T) {
	k, ctx, nft := keepertest.RewardVaultKeeper(t)

	donor := keepertest.TestAddress(0x01)
	ids := make([]string, 20)
	for i := range ids {
		ids[i] = fmt.Sprintf("hero-%d", i)
	}
	donate(t, k, ctx, nft, donor, ids...)

	seen := make(map[string]struct{}, len(ids))
	for word := uint64(0); word < 20; word++ {
		_, nftID, err := k.SelectAndRemove(ctx, word*word+13)
		require.NoError(t, err)
		_, dup := seen[nftID]
		require.False(t, dup, "collectible %s selected twice", nftID)
		seen[nftID] = struct{}{}
	}
	require.Len(t, seen, len(ids))
	require.Equal(t, uint64(0), k.UnclaimedCount(ctx))
	require.Equal(t, uint64(20), k.TotalDonated(ctx))
}

func TestReleaseCollectible(t *testing.T) {
	k, ctx, nft := keepertest.RewardVaultKeeper(t)
	donate(t, k, ctx, nft, keepertest.TestAddress(0x01), "hero-1")

	recipient := keepertest.TestAddress(0x09)
	require.NoError(t, k.ReleaseCollectible(ctx, testClass, "hero-1", recipient))
	require.Equal(t, recipient, nft.GetOwner(ctx, testClass, "hero-1"))
}

func TestReleaseCollectibleNotHeld(t *testing.T) {
	k, ctx, nft := keepertest.RewardVaultKeeper(t)
	owner := keepertest.TestAddress(0x01)
	nft.Mint(testClass, "hero-1", owner)

	err := k.ReleaseCollectible(ctx, testClass, "hero-1", keepertest.TestAddress(0x09))
	require.ErrorIs(t, err, types.ErrNotCollectibleOwner)
}

func TestDonateAfterDrainReopensSelection(t *testing.T) {
	k, ctx, nft := keepertest.RewardVaultKeeper(t)
	donate(t, k, ctx, nft, keepertest.TestAddress(0x01), "hero-1")

	_, _, err := k.SelectAndRemove(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(0), k.UnclaimedCount(ctx))

	donate(t, k, ctx, nft, keepertest.TestAddress(0x02), "hero-2")
	require.Equal(t, uint64(1), k.UnclaimedCount(ctx))

	_, nftID, err := k.SelectAndRemove(ctx, 99)
	require.NoError(t, err)
	require.Equal(t, "hero-2", nftID)
}
