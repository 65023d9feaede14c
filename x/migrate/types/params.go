package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// DefaultCooldownSeconds is the mandatory waiting period before a position
	// can be claimed: 30 days. The cooldown exists to neutralize rapid
	// deposit/withdraw cycling used to farm rewards.
	DefaultCooldownSeconds int64 = 30 * 24 * 60 * 60
)

// Params defines the parameters for the migrate module.
type Params struct {
	// OracleAddress is the only account allowed to deliver randomness
	// fulfillments. Empty disables fulfillment entirely.
	OracleAddress string `json:"oracle_address"`

	// CooldownSeconds is the waiting period between opening and claiming a
	// position.
	CooldownSeconds int64 `json:"cooldown_seconds"`
}

// DefaultParams returns the default parameters for the migrate module.
func DefaultParams() Params {
	return Params{
		OracleAddress:   "",
		CooldownSeconds: DefaultCooldownSeconds,
	}
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if p.OracleAddress != "" {
		if _, err := sdk.AccAddressFromBech32(p.OracleAddress); err != nil {
			return ErrInvalidAddress.Wrapf("invalid oracle address: %s", err)
		}
	}
	if p.CooldownSeconds <= 0 {
		return ErrInvalidAmount.Wrap("cooldown seconds must be positive")
	}
	return nil
}
