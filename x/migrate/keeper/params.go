package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

// GetParams returns the current migrate module parameters.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("GetParams: unmarshal: %w", err)
	}
	return params, nil
}

// SetParams persists the migrate module parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	bz, err := json.Marshal(&params)
	if err != nil {
		return fmt.Errorf("SetParams: marshal: %w", err)
	}
	store.Set(types.ParamsKey, bz)
	return nil
}

// CooldownPeriod returns the configured cooldown as a duration.
func (k Keeper) CooldownPeriod(ctx context.Context) (time.Duration, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(params.CooldownSeconds) * time.Second, nil
}
