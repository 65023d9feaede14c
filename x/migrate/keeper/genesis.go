package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

// InitGenesis initializes the migrate module state from a genesis state
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid migrate genesis state: %w", err))
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, position := range genState.Positions {
		account, err := sdk.AccAddressFromBech32(position.Account)
		if err != nil {
			panic(fmt.Errorf("invalid position account %s: %w", position.Account, err))
		}
		if err := k.SetPosition(ctx, account, position); err != nil {
			panic(err)
		}
	}

	for _, route := range genState.RequestRoutes {
		if err := k.SetRequestRoute(ctx, route); err != nil {
			panic(err)
		}
	}

	for _, minimum := range genState.MinimumDeposits {
		if err := k.SetMinimumDeposit(ctx, minimum.Denom, minimum.Amount); err != nil {
			panic(err)
		}
	}

	k.SetNextRequestID(ctx, genState.NextRequestId)
}

// ExportGenesis returns the migrate module's exported genesis state
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	positions := []types.Position{}
	if err := k.IteratePositions(ctx, func(position types.Position) bool {
		positions = append(positions, position)
		return false
	}); err != nil {
		panic(err)
	}

	routes, err := k.GetAllRequestRoutes(ctx)
	if err != nil {
		panic(err)
	}
	if routes == nil {
		routes = []types.RequestRoute{}
	}

	minimums, err := k.GetAllMinimumDeposits(ctx)
	if err != nil {
		panic(err)
	}
	if minimums == nil {
		minimums = []types.MinimumDeposit{}
	}

	return &types.GenesisState{
		Params:          params,
		Positions:       positions,
		RequestRoutes:   routes,
		MinimumDeposits: minimums,
		NextRequestId:   k.PeekNextRequestID(ctx),
	}
}
