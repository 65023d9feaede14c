package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgMigratePosition{}

// MsgMigratePosition commits an asset into a yield-bearing custodial position
// and enters the depositor into the collectible reward draw.
type MsgMigratePosition struct {
	Account string      `json:"account"`
	Denom   string      `json:"denom"`
	Amount  sdkmath.Int `json:"amount"`
}

// NewMsgMigratePosition creates a new MsgMigratePosition instance
func NewMsgMigratePosition(account, denom string, amount sdkmath.Int) *MsgMigratePosition {
	return &MsgMigratePosition{
		Account: account,
		Denom:   denom,
		Amount:  amount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgMigratePosition) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgMigratePosition) Type() string {
	return "migrate_position"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgMigratePosition) GetSigners() []sdk.AccAddress {
	account, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{account}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgMigratePosition) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgMigratePosition) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Account); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid account address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidDenom, "invalid denom: %s", err)
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount must be positive")
	}

	return nil
}
