package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgFulfillRandomness{}

// MsgFulfillRandomness delivers the random words for an outstanding request.
// Only the oracle account configured in module params may submit it, and each
// request id can be fulfilled at most once.
type MsgFulfillRandomness struct {
	Oracle      string   `json:"oracle"`
	RequestId   uint64   `json:"request_id"`
	RandomWords []uint64 `json:"random_words"`
}

// NewMsgFulfillRandomness creates a new MsgFulfillRandomness instance
func NewMsgFulfillRandomness(oracle string, requestID uint64, randomWords []uint64) *MsgFulfillRandomness {
	return &MsgFulfillRandomness{
		Oracle:      oracle,
		RequestId:   requestID,
		RandomWords: randomWords,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgFulfillRandomness) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgFulfillRandomness) Type() string {
	return "fulfill_randomness"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgFulfillRandomness) GetSigners() []sdk.AccAddress {
	oracle, err := sdk.AccAddressFromBech32(msg.Oracle)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{oracle}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgFulfillRandomness) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgFulfillRandomness) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Oracle); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid oracle address: %s", err)
	}

	if msg.RequestId == 0 {
		return sdkerrors.Wrap(ErrInvalidRequestId, "request id cannot be zero")
	}

	if len(msg.RandomWords) == 0 {
		return sdkerrors.Wrap(ErrEmptyRandomness, "at least one random word is required")
	}

	return nil
}
