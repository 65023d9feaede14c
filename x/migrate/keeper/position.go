package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

// GetPosition retrieves the position for an (account, denom) pair. Returns a
// zeroed position record (empty, reward never claimed) when none exists yet.
func (k Keeper) GetPosition(ctx context.Context, account sdk.AccAddress, denom string) (types.Position, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PositionKey(account, denom))
	if bz == nil {
		return types.Position{
			Account:       account.String(),
			Denom:         denom,
			ReceiptAmount: math.ZeroInt(),
		}, nil
	}

	var position types.Position
	if err := json.Unmarshal(bz, &position); err != nil {
		return types.Position{}, fmt.Errorf("GetPosition: unmarshal %s/%s: %w", account, denom, err)
	}
	return position, nil
}

// SetPosition persists a position record.
func (k Keeper) SetPosition(ctx context.Context, account sdk.AccAddress, position types.Position) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(&position)
	if err != nil {
		return fmt.Errorf("SetPosition: marshal %s/%s: %w", position.Account, position.Denom, err)
	}
	store.Set(types.PositionKey(account, position.Denom), bz)
	return nil
}

// HasPosition reports whether a position record exists for the pair.
func (k Keeper) HasPosition(ctx context.Context, account sdk.AccAddress, denom string) bool {
	return k.getStore(ctx).Has(types.PositionKey(account, denom))
}

// IteratePositions walks every stored position record. The callback returns
// true to stop iteration early.
func (k Keeper) IteratePositions(ctx context.Context, cb func(position types.Position) bool) error {
	store := prefix.NewStore(k.getStore(ctx), types.PositionKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var position types.Position
		if err := json.Unmarshal(iterator.Value(), &position); err != nil {
			return fmt.Errorf("IteratePositions: unmarshal: %w", err)
		}
		if cb(position) {
			break
		}
	}
	return nil
}

// GetAccountPositions returns every position record held by an account.
func (k Keeper) GetAccountPositions(ctx context.Context, account sdk.AccAddress) ([]types.Position, error) {
	var positions []types.Position
	addr := account.String()
	err := k.IteratePositions(ctx, func(position types.Position) bool {
		if position.Account == addr {
			positions = append(positions, position)
		}
		return false
	})
	return positions, err
}

// GetMinimumDeposit returns the configured minimum for a denom. The second
// return is false when the denom has no configured minimum, which marks the
// denom as unsupported.
func (k Keeper) GetMinimumDeposit(ctx context.Context, denom string) (math.Int, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.MinimumDepositKey(denom))
	if bz == nil {
		return math.ZeroInt(), false
	}

	var minimum math.Int
	if err := minimum.Unmarshal(bz); err != nil {
		return math.ZeroInt(), false
	}
	return minimum, true
}

// SetMinimumDeposit sets or overwrites the minimum migratable amount for a
// denom.
func (k Keeper) SetMinimumDeposit(ctx context.Context, denom string, minimum math.Int) error {
	store := k.getStore(ctx)
	bz, err := minimum.Marshal()
	if err != nil {
		return fmt.Errorf("SetMinimumDeposit: marshal minimum for %s: %w", denom, err)
	}
	store.Set(types.MinimumDepositKey(denom), bz)
	return nil
}

// GetAllMinimumDeposits returns every configured minimum deposit.
func (k Keeper) GetAllMinimumDeposits(ctx context.Context) ([]types.MinimumDeposit, error) {
	store := prefix.NewStore(k.getStore(ctx), types.MinimumDepositKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var minimums []types.MinimumDeposit
	for ; iterator.Valid(); iterator.Next() {
		var minimum math.Int
		if err := minimum.Unmarshal(iterator.Value()); err != nil {
			return nil, fmt.Errorf("GetAllMinimumDeposits: unmarshal: %w", err)
		}
		minimums = append(minimums, types.MinimumDeposit{
			Denom:  string(iterator.Key()),
			Amount: minimum,
		})
	}
	return minimums, nil
}

// NextRequestID returns the next randomness request id and increments the
// counter. Ids start at one so a zero OutstandingRequestId always means "no
// request pending".
func (k Keeper) NextRequestID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.RequestCountKey)

	var requestID uint64 = 1
	if bz != nil {
		requestID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, requestID+1)
	store.Set(types.RequestCountKey, nextBz)

	return requestID
}

// SetNextRequestID sets the request id counter, used by genesis import.
func (k Keeper) SetNextRequestID(ctx context.Context, requestID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, requestID)
	store.Set(types.RequestCountKey, bz)
}

// PeekNextRequestID returns the counter without incrementing it.
func (k Keeper) PeekNextRequestID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.RequestCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// GetRequestRoute looks up the route for an outstanding request id.
func (k Keeper) GetRequestRoute(ctx context.Context, requestID uint64) (types.RequestRoute, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.RequestRouteKey(requestID))
	if bz == nil {
		return types.RequestRoute{}, false
	}

	var route types.RequestRoute
	if err := json.Unmarshal(bz, &route); err != nil {
		return types.RequestRoute{}, false
	}
	return route, true
}

// SetRequestRoute stores the route for an outstanding request id.
func (k Keeper) SetRequestRoute(ctx context.Context, route types.RequestRoute) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(&route)
	if err != nil {
		return fmt.Errorf("SetRequestRoute: marshal route %d: %w", route.RequestId, err)
	}
	store.Set(types.RequestRouteKey(route.RequestId), bz)
	return nil
}

// consumeRequestRoute deletes a route so the request id can never be
// fulfilled twice.
func (k Keeper) consumeRequestRoute(ctx context.Context, requestID uint64) {
	k.getStore(ctx).Delete(types.RequestRouteKey(requestID))
}

// GetAllRequestRoutes returns every outstanding request route.
func (k Keeper) GetAllRequestRoutes(ctx context.Context) ([]types.RequestRoute, error) {
	store := prefix.NewStore(k.getStore(ctx), types.RequestRouteKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var routes []types.RequestRoute
	for ; iterator.Valid(); iterator.Next() {
		var route types.RequestRoute
		if err := json.Unmarshal(iterator.Value(), &route); err != nil {
			return nil, fmt.Errorf("GetAllRequestRoutes: unmarshal: %w", err)
		}
		routes = append(routes, route)
	}
	return routes, nil
}
