package domain

import "github.com/shopspring/decimal"

// Account holds the balances for a single client. Total is always
// derived from Available + Held and never stored, so the
// available + held == total invariant cannot drift.
type Account struct {
	ClientID  uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

// NewAccount creates an empty, unlocked account for the given client.
func NewAccount(clientID uint16) *Account {
	return &Account{
		ClientID:  clientID,
		Available: decimal.Zero,
		Held:      decimal.Zero,
	}
}

// Total returns the derived total balance.
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// Credit adds amount to the available funds. Locked accounts accept no
// further deposits.
func (a *Account) Credit(amount decimal.Decimal) error {
	if a.Locked {
		return ErrAccountLocked
	}
	a.Available = a.Available.Add(amount)
	return nil
}

// Debit removes amount from the available funds.
func (a *Account) Debit(amount decimal.Decimal) error {
	if a.Locked {
		return ErrAccountLocked
	}
	if a.Available.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.Available = a.Available.Sub(amount)
	return nil
}

// HoldFunds moves amount from available into held. Available may go
// negative: the deposited funds can already be withdrawn by the time
// the dispute arrives. Lock state is ignored so that disputes on an
// already-locked account keep working.
func (a *Account) HoldFunds(amount decimal.Decimal) {
	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
}

// ReleaseFunds moves amount from held back into available.
func (a *Account) ReleaseFunds(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	a.Available = a.Available.Add(amount)
}

// Confiscate removes amount from held and locks the account. Neither
// available nor held regains the funds.
func (a *Account) Confiscate(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	a.Locked = true
}
