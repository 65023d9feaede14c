package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

// RewardDistribution describes a fulfilled randomness request.
type RewardDistribution struct {
	Requester sdk.AccAddress
	Denom     string
	ClassId   string
	NftId     string
}

// FulfillRandomness consumes an outstanding randomness request and
// distributes a collectible to the original requester.
//
// The oracle is an untrusted-timing external caller, so the message is
// authenticated against the configured oracle address and validated against
// the live request route: an unknown id fails ErrInvalidRequestId, a stale or
// duplicate callback whose id no longer matches the position's outstanding
// request fails ErrRequestIdMismatch, and a pair that was already rewarded
// fails ErrRewardAlreadyClaimed. The route is deleted on success, which is
// what makes a second delivery of the same id impossible.
//
// The collectible is selected against the vault's state at fulfillment time,
// not at request time. This is deliberate: it keeps selection unbiased and
// O(1) at the cost of the draw depending on donations that arrived between
// request and fulfillment.
func (k Keeper) FulfillRandomness(ctx context.Context, oracle sdk.AccAddress, requestID uint64, randomWords []uint64) (RewardDistribution, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	params, err := k.GetParams(ctx)
	if err != nil {
		return RewardDistribution{}, err
	}
	if params.OracleAddress == "" || oracle.String() != params.OracleAddress {
		return RewardDistribution{}, types.ErrUnauthorizedOracle.Wrapf("caller %s", oracle)
	}

	if len(randomWords) == 0 {
		return RewardDistribution{}, types.ErrEmptyRandomness
	}

	route, found := k.GetRequestRoute(ctx, requestID)
	if !found {
		return RewardDistribution{}, types.ErrInvalidRequestId.Wrapf("request %d has no live route", requestID)
	}

	requester, err := sdk.AccAddressFromBech32(route.Requester)
	if err != nil {
		return RewardDistribution{}, types.ErrInvalidAddress.Wrapf("corrupt route requester: %s", err)
	}

	position, err := k.GetPosition(ctx, requester, route.Denom)
	if err != nil {
		return RewardDistribution{}, err
	}

	if position.OutstandingRequestId != requestID {
		return RewardDistribution{}, types.ErrRequestIdMismatch.Wrapf(
			"request %d does not match outstanding request %d for %s/%s",
			requestID, position.OutstandingRequestId, route.Requester, route.Denom,
		)
	}

	if position.RewardClaimed {
		return RewardDistribution{}, types.ErrRewardAlreadyClaimed.Wrapf("pair %s/%s", route.Requester, route.Denom)
	}

	position.RewardClaimed = true
	position.OutstandingRequestId = 0
	if err := k.SetPosition(ctx, requester, position); err != nil {
		return RewardDistribution{}, err
	}

	k.consumeRequestRoute(ctx, requestID)

	classID, nftID, err := k.vaultKeeper.SelectAndRemove(ctx, randomWords[0])
	if err != nil {
		return RewardDistribution{}, fmt.Errorf("select reward: %w", err)
	}

	if err := k.vaultKeeper.ReleaseCollectible(ctx, classID, nftID, requester); err != nil {
		return RewardDistribution{}, fmt.Errorf("release collectible %s/%s: %w", classID, nftID, err)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardDistributed,
			sdk.NewAttribute(types.AttributeKeyRequestId, fmt.Sprintf("%d", requestID)),
			sdk.NewAttribute(types.AttributeKeyAccount, route.Requester),
			sdk.NewAttribute(types.AttributeKeyDenom, route.Denom),
			sdk.NewAttribute(types.AttributeKeyClassId, classID),
			sdk.NewAttribute(types.AttributeKeyNftId, nftID),
		),
	)

	GetMigrateMetrics().FulfillmentsTotal.Inc()

	return RewardDistribution{
		Requester: requester,
		Denom:     route.Denom,
		ClassId:   classID,
		NftId:     nftID,
	}, nil
}
