package keeper

import (
	"bytes"
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	migratetypes "github.com/burrow-chain/burrow/x/migrate/types"
)

// TestAddress returns a deterministic 20-byte account address for tests.
func TestAddress(b byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{b}, 20))
}

// MockBankKeeper is an in-memory bank with just enough behavior for escrow
// flows: per-address balances and module account transfers.
type MockBankKeeper struct {
	balances map[string]sdk.Coins

	SendToModuleErr error
}

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// SetBalance overwrites an address's balance of a coin.
func (m *MockBankKeeper) SetBalance(addr sdk.AccAddress, coin sdk.Coin) {
	key := addr.String()
	m.balances[key] = m.balances[key].Sub(sdk.NewCoin(coin.Denom, m.balances[key].AmountOf(coin.Denom))).Add(coin)
}

// AddBalance credits an address.
func (m *MockBankKeeper) AddBalance(addr sdk.AccAddress, coin sdk.Coin) {
	key := addr.String()
	m.balances[key] = m.balances[key].Add(coin)
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	if m.SendToModuleErr != nil {
		return m.SendToModuleErr
	}
	return m.send(senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (m *MockBankKeeper) send(from, to sdk.AccAddress, amt sdk.Coins) error {
	fromKey := from.String()
	balance, hasNeg := m.balances[fromKey].SafeSub(amt...)
	if hasNeg {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", fromKey, m.balances[fromKey], amt)
	}
	m.balances[fromKey] = balance
	m.balances[to.String()] = m.balances[to.String()].Add(amt...)
	return nil
}

// MockLendingPool simulates the yield custodian. Receipt balances are tracked
// per holder; FeeBps skews the credited receipt amount below the nominal
// deposit, the way a real pool's fees and rounding would.
type MockLendingPool struct {
	receiptDenoms map[string]string
	balances      map[string]map[string]math.Int

	FeeBps      int64
	DepositErr  error
	WithdrawErr error
}

func NewMockLendingPool() *MockLendingPool {
	return &MockLendingPool{
		receiptDenoms: make(map[string]string),
		balances:      make(map[string]map[string]math.Int),
	}
}

// MapReceipt registers a receipt denom for an underlying denom.
func (m *MockLendingPool) MapReceipt(underlying, receipt string) {
	m.receiptDenoms[underlying] = receipt
}

func (m *MockLendingPool) ReceiptDenomFor(_ context.Context, denom string) (string, bool) {
	receipt, ok := m.receiptDenoms[denom]
	return receipt, ok
}

func (m *MockLendingPool) Deposit(_ context.Context, denom string, amount math.Int, beneficiary sdk.AccAddress) error {
	if m.DepositErr != nil {
		return m.DepositErr
	}
	receipt, ok := m.receiptDenoms[denom]
	if !ok {
		return fmt.Errorf("no receipt mapping for %s", denom)
	}

	credited := amount
	if m.FeeBps > 0 {
		credited = amount.MulRaw(10000 - m.FeeBps).QuoRaw(10000)
	}
	m.credit(beneficiary, receipt, credited)
	return nil
}

func (m *MockLendingPool) ReceiptBalanceOf(_ context.Context, receiptDenom string, holder sdk.AccAddress) math.Int {
	if holderBalances, ok := m.balances[holder.String()]; ok {
		if balance, ok := holderBalances[receiptDenom]; ok {
			return balance
		}
	}
	return math.ZeroInt()
}

func (m *MockLendingPool) WithdrawReceipt(ctx context.Context, receiptDenom string, to sdk.AccAddress, amount math.Int) error {
	if m.WithdrawErr != nil {
		return m.WithdrawErr
	}
	// Receipts leave module custody and land with the account.
	moduleAddr := authtypes.NewModuleAddress(migratetypes.ModuleName)
	held := m.ReceiptBalanceOf(ctx, receiptDenom, moduleAddr)
	if held.LT(amount) {
		return fmt.Errorf("custody holds %s%s, cannot withdraw %s", held, receiptDenom, amount)
	}
	m.credit(moduleAddr, receiptDenom, amount.Neg())
	m.credit(to, receiptDenom, amount)
	return nil
}

func (m *MockLendingPool) credit(holder sdk.AccAddress, receiptDenom string, amount math.Int) {
	key := holder.String()
	if m.balances[key] == nil {
		m.balances[key] = make(map[string]math.Int)
	}
	current, ok := m.balances[key][receiptDenom]
	if !ok {
		current = math.ZeroInt()
	}
	m.balances[key][receiptDenom] = current.Add(amount)
}

// MockWrappedSource simulates the issuing system of a wrapped asset. Unwrap
// burns the wrapped escrow and mints the underlying into the module account
// at RateBps/10000, so tests can model redemption haircuts.
type MockWrappedSource struct {
	bank       *MockBankKeeper
	underlying map[string]string

	RateBps   int64
	UnwrapErr error
}

func NewMockWrappedSource(bank *MockBankKeeper) *MockWrappedSource {
	return &MockWrappedSource{
		bank:       bank,
		underlying: make(map[string]string),
		RateBps:    10000,
	}
}

// MapUnderlying registers the underlying denom obtained by unwrapping.
func (m *MockWrappedSource) MapUnderlying(wrapped, underlying string) {
	m.underlying[wrapped] = underlying
}

func (m *MockWrappedSource) UnderlyingDenom(_ context.Context, wrappedDenom string) (string, bool) {
	underlying, ok := m.underlying[wrappedDenom]
	return underlying, ok
}

func (m *MockWrappedSource) Unwrap(_ context.Context, wrappedDenom string, amount math.Int) error {
	if m.UnwrapErr != nil {
		return m.UnwrapErr
	}
	underlying, ok := m.underlying[wrappedDenom]
	if !ok {
		return fmt.Errorf("no underlying mapping for %s", wrappedDenom)
	}

	moduleAddr := authtypes.NewModuleAddress(migratetypes.ModuleName)
	obtained := amount.MulRaw(m.RateBps).QuoRaw(10000)
	m.bank.AddBalance(moduleAddr, sdk.NewCoin(underlying, obtained))
	return nil
}

// MockNFTKeeper is an in-memory collectible registry.
type MockNFTKeeper struct {
	owners map[string]sdk.AccAddress

	TransferErr error
}

func NewMockNFTKeeper() *MockNFTKeeper {
	return &MockNFTKeeper{owners: make(map[string]sdk.AccAddress)}
}

// Mint assigns a collectible to an owner.
func (m *MockNFTKeeper) Mint(classID, nftID string, owner sdk.AccAddress) {
	m.owners[classID+"/"+nftID] = owner
}

func (m *MockNFTKeeper) GetOwner(_ context.Context, classID, nftID string) sdk.AccAddress {
	return m.owners[classID+"/"+nftID]
}

func (m *MockNFTKeeper) Transfer(_ context.Context, classID, nftID string, receiver sdk.AccAddress) error {
	if m.TransferErr != nil {
		return m.TransferErr
	}
	key := classID + "/" + nftID
	if _, ok := m.owners[key]; !ok {
		return fmt.Errorf("collectible %s does not exist", key)
	}
	m.owners[key] = receiver
	return nil
}
