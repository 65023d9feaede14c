package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/burrow-chain/burrow/testutil/keeper"
	"github.com/burrow-chain/burrow/x/migrate/keeper"
	"github.com/burrow-chain/burrow/x/migrate/types"
)

const wrappedDenom = "wuatom"

func TestSourceUnwrapNormalizerMigration(t *testing.T) {
	k, _, ctx, mocks, _ := setupMigration(t, 1000, 0)

	source := keepertest.NewMockWrappedSource(mocks.Bank)
	source.MapUnderlying(wrappedDenom, testDenom)
	// The issuer redeems at a 2% haircut.
	source.RateBps = 9800
	k.RegisterNormalizer(wrappedDenom, keeper.NewSourceUnwrapNormalizer(mocks.Bank, source))

	require.NoError(t, k.SetMinimumDeposit(ctx, wrappedDenom, math.NewInt(1000)))

	account := keepertest.TestAddress(0x05)
	mocks.Bank.SetBalance(account, sdk.NewCoin(wrappedDenom, math.NewInt(10000)))

	result, err := k.MigratePosition(ctx, account, wrappedDenom, math.NewInt(10000))
	require.NoError(t, err)

	// 10000 wrapped unwrap to 9800 underlying, deposited 1:1 for receipts.
	require.Equal(t, testReceiptDenom, result.ReceiptDenom)
	require.Equal(t, math.NewInt(9800), result.ReceiptAmount)

	// The wrapped escrow left the account; the position is keyed by the
	// presented denom, not the underlying.
	require.True(t, mocks.Bank.GetBalance(ctx, account, wrappedDenom).Amount.IsZero())
	position, err := k.GetPosition(ctx, account, wrappedDenom)
	require.NoError(t, err)
	require.True(t, position.IsOpen())
}

func TestSourceUnwrapNormalizerUnknownWrappedDenom(t *testing.T) {
	k, _, ctx, mocks, _ := setupMigration(t, 1000, 0)

	source := keepertest.NewMockWrappedSource(mocks.Bank)
	k.RegisterNormalizer(wrappedDenom, keeper.NewSourceUnwrapNormalizer(mocks.Bank, source))
	require.NoError(t, k.SetMinimumDeposit(ctx, wrappedDenom, math.NewInt(1000)))

	account := keepertest.TestAddress(0x05)
	mocks.Bank.SetBalance(account, sdk.NewCoin(wrappedDenom, math.NewInt(5000)))

	_, err := k.MigratePosition(ctx, account, wrappedDenom, math.NewInt(5000))
	require.ErrorIs(t, err, types.ErrNoNormalizer)
}

func TestSourceUnwrapNormalizerZeroYieldFails(t *testing.T) {
	k, _, ctx, mocks, _ := setupMigration(t, 1000, 0)

	source := keepertest.NewMockWrappedSource(mocks.Bank)
	source.MapUnderlying(wrappedDenom, testDenom)
	source.RateBps = 0
	k.RegisterNormalizer(wrappedDenom, keeper.NewSourceUnwrapNormalizer(mocks.Bank, source))
	require.NoError(t, k.SetMinimumDeposit(ctx, wrappedDenom, math.NewInt(1000)))

	account := keepertest.TestAddress(0x05)
	mocks.Bank.SetBalance(account, sdk.NewCoin(wrappedDenom, math.NewInt(5000)))

	_, err := k.MigratePosition(ctx, account, wrappedDenom, math.NewInt(5000))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestDirectNormalizerInsufficientFunds(t *testing.T) {
	k, _, ctx, _, account := setupMigration(t, 1000, 500)

	_, err := k.MigratePosition(ctx, account, testDenom, math.NewInt(1000))
	require.Error(t, err)

	// Nothing was opened.
	require.False(t, k.HasPosition(ctx, account, testDenom))
}
