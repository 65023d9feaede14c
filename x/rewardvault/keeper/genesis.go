package keeper

import (
	"context"
	"fmt"

	"github.com/burrow-chain/burrow/x/rewardvault/types"
)

// InitGenesis initializes the reward vault state from a genesis state. The
// unclaimed index set is rebuilt from the claimed flags so exports carry only
// the arena.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid rewardvault genesis state: %w", err))
	}

	for _, record := range genState.Records {
		if err := k.appendRecord(ctx, record); err != nil {
			panic(fmt.Errorf("failed to import collectible record: %w", err))
		}
	}
}

// ExportGenesis returns the reward vault state as a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	return &types.GenesisState{
		Records: k.GetAllRecords(ctx),
	}
}
