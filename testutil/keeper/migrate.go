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
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	migratekeeper "github.com/burrow-chain/burrow/x/migrate/keeper"
	migratetypes "github.com/burrow-chain/burrow/x/migrate/types"
	vaultkeeper "github.com/burrow-chain/burrow/x/rewardvault/keeper"
	vaulttypes "github.com/burrow-chain/burrow/x/rewardvault/types"
)

// MigrateMocks aggregates the mock collaborators wired into a test migrate
// keeper.
type MigrateMocks struct {
	Bank    *MockBankKeeper
	Lending *MockLendingPool
	NFT     *MockNFTKeeper
}

// MigrateTestTime is the block time of freshly created test contexts.
var MigrateTestTime = time.Unix(1700000000, 0).UTC()

// MigrateKeeper creates a test keeper for the migrate module, wired to a real
// reward vault keeper and mock bank and lending pool collaborators. Both
// module stores are mounted on the same in-memory multistore so cross-module
// flows behave as on a running chain.
func MigrateKeeper(t testing.TB) (*migratekeeper.Keeper, *vaultkeeper.Keeper, sdk.Context, *MigrateMocks) {
	migrateStoreKey := storetypes.NewKVStoreKey(migratetypes.StoreKey)
	vaultStoreKey := storetypes.NewKVStoreKey(vaulttypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(migrateStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(vaultStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	mocks := &MigrateMocks{
		Bank:    NewMockBankKeeper(),
		Lending: NewMockLendingPool(),
		NFT:     NewMockNFTKeeper(),
	}

	vaultK := vaultkeeper.NewKeeper(
		cdc,
		vaultStoreKey,
		mocks.NFT,
	)

	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()
	migrateK := migratekeeper.NewKeeper(
		cdc,
		migrateStoreKey,
		authority,
		mocks.Bank,
		mocks.Lending,
		vaultK,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: MigrateTestTime}, false, log.NewNopLogger())

	migrateK.InitGenesis(ctx, *migratetypes.DefaultGenesis())
	vaultK.InitGenesis(ctx, *vaulttypes.DefaultGenesis())

	return migrateK, vaultK, ctx, mocks
}
