package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/burrow-chain/burrow/x/rewardvault/types"
)

// RegisterInvariants registers all reward vault module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "conservation", ConservationInvariant(k))
	ir.RegisterRoute(types.ModuleName, "unclaimed-set", UnclaimedSetInvariant(k))
}

// AllInvariants runs all invariants of the reward vault module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ConservationInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return UnclaimedSetInvariant(k)(ctx)
	}
}

// ConservationInvariant checks that claimed plus unclaimed records always
// equal the total donated count. Records are never destroyed.
func ConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		total := k.TotalDonated(ctx)
		unclaimed := k.UnclaimedCount(ctx)

		var claimed uint64
		for i := uint64(0); i < total; i++ {
			record, ok := k.GetRecord(ctx, i)
			if !ok {
				return sdk.FormatInvariant(
					types.ModuleName, "conservation",
					fmt.Sprintf("arena index %d missing below record count %d", i, total),
				), true
			}
			if record.Claimed {
				claimed++
			}
		}

		broken := claimed+unclaimed != total
		return sdk.FormatInvariant(
			types.ModuleName, "conservation",
			fmt.Sprintf("claimed %d + unclaimed %d != total donated %d", claimed, unclaimed, total),
		), broken
	}
}

// UnclaimedSetInvariant checks that every slot of the unclaimed set points at
// a distinct arena record that is not marked claimed.
func UnclaimedSetInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		unclaimed := k.UnclaimedCount(ctx)
		seen := make(map[uint64]struct{}, unclaimed)

		for slot := uint64(0); slot < unclaimed; slot++ {
			index, ok := k.unclaimedSlot(ctx, slot)
			if !ok {
				count++
				msg += fmt.Sprintf("\tslot %d missing below unclaimed count %d\n", slot, unclaimed)
				continue
			}

			if _, dup := seen[index]; dup {
				count++
				msg += fmt.Sprintf("\tarena index %d referenced by multiple slots\n", index)
				continue
			}
			seen[index] = struct{}{}

			record, ok := k.GetRecord(ctx, index)
			if !ok {
				count++
				msg += fmt.Sprintf("\tslot %d points at missing arena index %d\n", slot, index)
				continue
			}
			if record.Claimed {
				count++
				msg += fmt.Sprintf("\tslot %d points at claimed record %d\n", slot, index)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "unclaimed-set",
			fmt.Sprintf("found %d corrupt unclaimed slots\n%s", count, msg),
		), broken
	}
}
