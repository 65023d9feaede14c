package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/burrow-chain/burrow/x/rewardvault/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// DonateCollectible handles MsgDonateCollectible
func (m msgServer) DonateCollectible(ctx context.Context, msg *types.MsgDonateCollectible) (*types.MsgDonateCollectibleResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	donor, err := sdk.AccAddressFromBech32(msg.Donor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid donor address: %s", err)
	}

	if err := m.Donate(ctx, donor, msg.ClassId, msg.NftId); err != nil {
		return nil, fmt.Errorf("DonateCollectible: %w", err)
	}

	return &types.MsgDonateCollectibleResponse{}, nil
}

// DonateCollectibleBatch handles MsgDonateCollectibleBatch
func (m msgServer) DonateCollectibleBatch(ctx context.Context, msg *types.MsgDonateCollectibleBatch) (*types.MsgDonateCollectibleBatchResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	donor, err := sdk.AccAddressFromBech32(msg.Donor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid donor address: %s", err)
	}

	donated, err := m.DonateBatch(ctx, donor, msg.ClassIds, msg.NftIds)
	if err != nil {
		return nil, fmt.Errorf("DonateCollectibleBatch: %w", err)
	}

	return &types.MsgDonateCollectibleBatchResponse{Donated: donated}, nil
}
