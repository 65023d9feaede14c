package types

import (
	"fmt"
)

// GenesisState defines the migrate module's genesis state.
type GenesisState struct {
	Params          Params           `json:"params"`
	Positions       []Position       `json:"positions"`
	RequestRoutes   []RequestRoute   `json:"request_routes"`
	MinimumDeposits []MinimumDeposit `json:"minimum_deposits"`
	NextRequestId   uint64           `json:"next_request_id"`
}

// DefaultGenesis returns the default genesis state for the migrate module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:          DefaultParams(),
		Positions:       []Position{},
		RequestRoutes:   []RequestRoute{},
		MinimumDeposits: []MinimumDeposit{},
		NextRequestId:   1,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	if gs.NextRequestId == 0 {
		return fmt.Errorf("next request id must be positive")
	}

	seenPositions := make(map[string]struct{}, len(gs.Positions))
	for _, pos := range gs.Positions {
		if err := pos.Validate(); err != nil {
			return fmt.Errorf("invalid position: %w", err)
		}
		pairKey := pos.Account + "/" + pos.Denom
		if _, ok := seenPositions[pairKey]; ok {
			return fmt.Errorf("duplicate position for pair %s", pairKey)
		}
		seenPositions[pairKey] = struct{}{}
	}

	seenRoutes := make(map[uint64]struct{}, len(gs.RequestRoutes))
	for _, route := range gs.RequestRoutes {
		if err := route.Validate(); err != nil {
			return fmt.Errorf("invalid request route: %w", err)
		}
		if route.RequestId >= gs.NextRequestId {
			return fmt.Errorf("request route %d exceeds next request id %d", route.RequestId, gs.NextRequestId)
		}
		if _, ok := seenRoutes[route.RequestId]; ok {
			return fmt.Errorf("duplicate request route %d", route.RequestId)
		}
		seenRoutes[route.RequestId] = struct{}{}
	}

	seenDenoms := make(map[string]struct{}, len(gs.MinimumDeposits))
	for _, min := range gs.MinimumDeposits {
		if err := min.Validate(); err != nil {
			return fmt.Errorf("invalid minimum deposit: %w", err)
		}
		if _, ok := seenDenoms[min.Denom]; ok {
			return fmt.Errorf("duplicate minimum deposit for denom %s", min.Denom)
		}
		seenDenoms[min.Denom] = struct{}{}
	}

	return nil
}
