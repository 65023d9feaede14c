package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the migrate MsgServer interface
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// MigratePosition handles opening a migration position
func (ms msgServer) MigratePosition(goCtx context.Context, msg *types.MsgMigratePosition) (*types.MsgMigratePositionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("MigratePosition: validate: %w", err)
	}

	account, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		return nil, fmt.Errorf("MigratePosition: invalid account address: %w", err)
	}

	result, err := ms.Keeper.MigratePosition(goCtx, account, msg.Denom, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("MigratePosition: %w", err)
	}

	return &types.MsgMigratePositionResponse{
		ReceiptDenom:  result.ReceiptDenom,
		ReceiptAmount: result.ReceiptAmount,
		RequestId:     result.RequestId,
	}, nil
}

// ClaimPosition handles closing a position after its cooldown
func (ms msgServer) ClaimPosition(goCtx context.Context, msg *types.MsgClaimPosition) (*types.MsgClaimPositionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ClaimPosition: validate: %w", err)
	}

	account, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		return nil, fmt.Errorf("ClaimPosition: invalid account address: %w", err)
	}

	result, err := ms.Keeper.ClaimPosition(goCtx, account, msg.Denom)
	if err != nil {
		return nil, fmt.Errorf("ClaimPosition: %w", err)
	}

	return &types.MsgClaimPositionResponse{
		ReceiptDenom:  result.ReceiptDenom,
		ReceiptAmount: result.ReceiptAmount,
	}, nil
}

// FulfillRandomness handles a randomness delivery from the authorized oracle
func (ms msgServer) FulfillRandomness(goCtx context.Context, msg *types.MsgFulfillRandomness) (*types.MsgFulfillRandomnessResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("FulfillRandomness: validate: %w", err)
	}

	oracle, err := sdk.AccAddressFromBech32(msg.Oracle)
	if err != nil {
		return nil, fmt.Errorf("FulfillRandomness: invalid oracle address: %w", err)
	}

	distribution, err := ms.Keeper.FulfillRandomness(goCtx, oracle, msg.RequestId, msg.RandomWords)
	if err != nil {
		return nil, fmt.Errorf("FulfillRandomness: %w", err)
	}

	return &types.MsgFulfillRandomnessResponse{
		ClassId: distribution.ClassId,
		NftId:   distribution.NftId,
	}, nil
}

// SetMinimumDeposit handles configuring a denom's minimum migratable amount
func (ms msgServer) SetMinimumDeposit(goCtx context.Context, msg *types.MsgSetMinimumDeposit) (*types.MsgSetMinimumDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetMinimumDeposit: validate: %w", err)
	}

	if msg.Authority != ms.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", ms.GetAuthority(), msg.Authority)
	}

	if err := ms.Keeper.SetMinimumDeposit(goCtx, msg.Denom, msg.Minimum); err != nil {
		return nil, fmt.Errorf("SetMinimumDeposit: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(goCtx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMinimumDepositSet,
			sdk.NewAttribute(types.AttributeKeyDenom, msg.Denom),
			sdk.NewAttribute(types.AttributeKeyMinimum, msg.Minimum.String()),
		),
	)

	return &types.MsgSetMinimumDepositResponse{}, nil
}

// UpdateParams handles replacing the module parameters
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateParams: validate: %w", err)
	}

	if msg.Authority != ms.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", ms.GetAuthority(), msg.Authority)
	}

	if err := ms.Keeper.SetParams(goCtx, msg.Params); err != nil {
		return nil, fmt.Errorf("UpdateParams: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(goCtx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeParamsUpdated))

	return &types.MsgUpdateParamsResponse{}, nil
}
