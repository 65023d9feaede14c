package types

import (
	"time"

	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "migrate"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Position is the per-account-per-denom migration record. Positions are
// created implicitly on the first migration for a pair and are never deleted:
// RewardClaimed must survive the position being closed so the pair can never
// earn a second collectible.
type Position struct {
	// Account is the bech32 address that opened the position.
	Account string `json:"account"`

	// Denom is the asset the account presented for migration.
	Denom string `json:"denom"`

	// RewardClaimed is set once a collectible has been distributed for this
	// (account, denom) pair and permanently blocks further reward-eligible
	// migrations on the pair.
	RewardClaimed bool `json:"reward_claimed"`

	// OutstandingRequestId is the pending randomness request for this
	// position, zero when none is outstanding.
	OutstandingRequestId uint64 `json:"outstanding_request_id"`

	// ReceiptDenom is the custodian's receipt denom the position was credited
	// in, recorded at migration time because the presented denom may have
	// been normalized into a different underlying asset.
	ReceiptDenom string `json:"receipt_denom"`

	// ReceiptAmount is the yield-bearing receipt balance credited to the
	// position, zeroed on claim.
	ReceiptAmount math.Int `json:"receipt_amount"`

	// CooldownStart is set on every successful migration. The position may be
	// claimed once block time reaches CooldownStart plus the cooldown period.
	CooldownStart time.Time `json:"cooldown_start"`
}

// IsOpen reports whether the position currently holds receipt tokens.
// A position with a zero receipt balance is empty regardless of its other
// fields and may accept a fresh migration (reward eligibility permitting).
func (p Position) IsOpen() bool {
	return !p.ReceiptAmount.IsNil() && p.ReceiptAmount.IsPositive()
}

// Validate checks internal consistency of a position record.
func (p Position) Validate() error {
	if p.Account == "" {
		return ErrInvalidAddress.Wrap("position account cannot be empty")
	}
	if p.Denom == "" {
		return ErrInvalidDenom.Wrap("position denom cannot be empty")
	}
	if p.ReceiptAmount.IsNil() || p.ReceiptAmount.IsNegative() {
		return ErrInvalidAmount.Wrap("position receipt amount cannot be nil or negative")
	}
	// An open position must have a cooldown anchor.
	if p.ReceiptAmount.IsPositive() && p.CooldownStart.IsZero() {
		return ErrInvalidPosition.Wrapf("open position for %s/%s has no cooldown start", p.Account, p.Denom)
	}
	return nil
}

// RequestRoute maps an outstanding randomness request id back to the position
// that issued it. Routes are single-use: consumed on the first fulfillment,
// so a duplicate or stale callback for the same id cannot be replayed.
type RequestRoute struct {
	RequestId uint64 `json:"request_id"`
	Requester string `json:"requester"`
	Denom     string `json:"denom"`
}

// Validate checks internal consistency of a request route.
func (r RequestRoute) Validate() error {
	if r.RequestId == 0 {
		return ErrInvalidRequestId.Wrap("request id cannot be zero")
	}
	if r.Requester == "" {
		return ErrInvalidAddress.Wrap("route requester cannot be empty")
	}
	if r.Denom == "" {
		return ErrInvalidDenom.Wrap("route denom cannot be empty")
	}
	return nil
}

// MinimumDeposit is the configured minimum migratable amount for a denom.
// A denom with no configured minimum is not migratable at all.
type MinimumDeposit struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// Validate checks a minimum deposit entry.
func (m MinimumDeposit) Validate() error {
	if m.Denom == "" {
		return ErrInvalidDenom.Wrap("minimum deposit denom cannot be empty")
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("minimum deposit must be positive")
	}
	return nil
}
