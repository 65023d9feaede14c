package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgClaimPosition{}

// MsgClaimPosition withdraws a position's receipt balance once the cooldown
// period has elapsed.
type MsgClaimPosition struct {
	Account string `json:"account"`
	Denom   string `json:"denom"`
}

// NewMsgClaimPosition creates a new MsgClaimPosition instance
func NewMsgClaimPosition(account, denom string) *MsgClaimPosition {
	return &MsgClaimPosition{
		Account: account,
		Denom:   denom,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgClaimPosition) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgClaimPosition) Type() string {
	return "claim_position"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgClaimPosition) GetSigners() []sdk.AccAddress {
	account, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{account}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgClaimPosition) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgClaimPosition) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Account); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid account address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidDenom, "invalid denom: %s", err)
	}

	return nil
}
