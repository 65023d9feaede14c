package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSetMinimumDeposit{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSetMinimumDeposit configures the minimum migratable amount for a denom.
// Setting a minimum is what marks a denom as supported; the message is
// restricted to the module authority.
type MsgSetMinimumDeposit struct {
	Authority string      `json:"authority"`
	Denom     string      `json:"denom"`
	Minimum   sdkmath.Int `json:"minimum"`
}

// NewMsgSetMinimumDeposit creates a new MsgSetMinimumDeposit instance
func NewMsgSetMinimumDeposit(authority, denom string, minimum sdkmath.Int) *MsgSetMinimumDeposit {
	return &MsgSetMinimumDeposit{
		Authority: authority,
		Denom:     denom,
		Minimum:   minimum,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSetMinimumDeposit) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSetMinimumDeposit) Type() string {
	return "set_minimum_deposit"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSetMinimumDeposit) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetMinimumDeposit) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetMinimumDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidDenom, "invalid denom: %s", err)
	}

	if msg.Minimum.IsNil() || !msg.Minimum.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum must be positive")
	}

	return nil
}

// MsgUpdateParams replaces the module parameters. Restricted to the module
// authority.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{
		Authority: authority,
		Params:    params,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgUpdateParams) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgUpdateParams) Type() string {
	return "update_params"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}

	return msg.Params.Validate()
}
