package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgDonateCollectible{}
	_ sdk.Msg = &MsgDonateCollectibleBatch{}
)

// MsgDonateCollectible donates one collectible into the reward vault.
type MsgDonateCollectible struct {
	Donor   string `json:"donor"`
	ClassId string `json:"class_id"`
	NftId   string `json:"nft_id"`
}

// NewMsgDonateCollectible creates a new MsgDonateCollectible instance
func NewMsgDonateCollectible(donor, classID, nftID string) *MsgDonateCollectible {
	return &MsgDonateCollectible{
		Donor:   donor,
		ClassId: classID,
		NftId:   nftID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgDonateCollectible) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgDonateCollectible) Type() string {
	return "donate_collectible"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgDonateCollectible) GetSigners() []sdk.AccAddress {
	donor, err := sdk.AccAddressFromBech32(msg.Donor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{donor}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgDonateCollectible) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgDonateCollectible) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Donor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid donor address: %s", err)
	}

	if msg.ClassId == "" {
		return sdkerrors.Wrap(ErrInvalidCollectible, "class id cannot be empty")
	}

	if msg.NftId == "" {
		return sdkerrors.Wrap(ErrInvalidCollectible, "nft id cannot be empty")
	}

	return nil
}

// MsgDonateCollectibleBatch donates several collectibles in one shot. The
// class and nft id lists are positional pairs and must be the same length;
// the whole batch is all-or-nothing.
type MsgDonateCollectibleBatch struct {
	Donor    string   `json:"donor"`
	ClassIds []string `json:"class_ids"`
	NftIds   []string `json:"nft_ids"`
}

// NewMsgDonateCollectibleBatch creates a new MsgDonateCollectibleBatch instance
func NewMsgDonateCollectibleBatch(donor string, classIDs, nftIDs []string) *MsgDonateCollectibleBatch {
	return &MsgDonateCollectibleBatch{
		Donor:    donor,
		ClassIds: classIDs,
		NftIds:   nftIDs,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgDonateCollectibleBatch) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgDonateCollectibleBatch) Type() string {
	return "donate_collectible_batch"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgDonateCollectibleBatch) GetSigners() []sdk.AccAddress {
	donor, err := sdk.AccAddressFromBech32(msg.Donor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{donor}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgDonateCollectibleBatch) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgDonateCollectibleBatch) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Donor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid donor address: %s", err)
	}

	if len(msg.ClassIds) != len(msg.NftIds) {
		return sdkerrors.Wrapf(ErrArrayLengthMismatch, "%d class ids vs %d nft ids", len(msg.ClassIds), len(msg.NftIds))
	}

	if len(msg.ClassIds) == 0 {
		return sdkerrors.Wrap(ErrInvalidCollectible, "batch cannot be empty")
	}

	for i := range msg.ClassIds {
		if msg.ClassIds[i] == "" {
			return sdkerrors.Wrapf(ErrInvalidCollectible, "class id %d cannot be empty", i)
		}
		if msg.NftIds[i] == "" {
			return sdkerrors.Wrapf(ErrInvalidCollectible, "nft id %d cannot be empty", i)
		}
	}

	return nil
}
