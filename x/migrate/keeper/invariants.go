package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

// RegisterInvariants registers all migrate module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "open-positions", OpenPositionsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "request-routes", RequestRoutesInvariant(k))
}

// AllInvariants runs all invariants of the migrate module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := OpenPositionsInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return RequestRoutesInvariant(k)(ctx)
	}
}

// OpenPositionsInvariant checks that every open position has a cooldown
// anchor and a non-negative receipt balance.
func OpenPositionsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		if err := k.IteratePositions(ctx, func(position types.Position) bool {
			if position.ReceiptAmount.IsNil() || position.ReceiptAmount.IsNegative() {
				count++
				msg += fmt.Sprintf("\tposition %s/%s has invalid receipt amount\n", position.Account, position.Denom)
			}
			if position.IsOpen() && position.CooldownStart.IsZero() {
				count++
				msg += fmt.Sprintf("\topen position %s/%s has no cooldown start\n", position.Account, position.Denom)
			}
			return false
		}); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "open-positions", err.Error()), true
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "open-positions",
			fmt.Sprintf("found %d invalid positions\n%s", count, msg),
		), broken
	}
}

// RequestRoutesInvariant checks that every live route points at a position
// whose outstanding request id matches, and that its id is below the counter.
func RequestRoutesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		routes, err := k.GetAllRequestRoutes(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "request-routes", err.Error()), true
		}

		nextID := k.PeekNextRequestID(ctx)
		for _, route := range routes {
			if route.RequestId >= nextID {
				count++
				msg += fmt.Sprintf("\troute %d exceeds request counter %d\n", route.RequestId, nextID)
				continue
			}

			requester, err := sdk.AccAddressFromBech32(route.Requester)
			if err != nil {
				count++
				msg += fmt.Sprintf("\troute %d has corrupt requester %s\n", route.RequestId, route.Requester)
				continue
			}

			position, err := k.GetPosition(ctx, requester, route.Denom)
			if err != nil || position.OutstandingRequestId != route.RequestId {
				count++
				msg += fmt.Sprintf("\troute %d does not match position %s/%s\n", route.RequestId, route.Requester, route.Denom)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "request-routes",
			fmt.Sprintf("found %d dangling request routes\n%s", count, msg),
		), broken
	}
}
