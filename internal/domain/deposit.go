package domain

import "github.com/shopspring/decimal"

// DepositStatus tracks where a stored deposit sits in the dispute
// lifecycle. Normal and the two terminal states accept no further
// transitions.
type DepositStatus int

const (
	StatusNormal DepositStatus = iota
	StatusUnderDispute
	StatusResolved
	StatusChargedBack
)

// String returns the status name for logs and responses.
func (s DepositStatus) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusUnderDispute:
		return "under_dispute"
	case StatusResolved:
		return "resolved"
	case StatusChargedBack:
		return "charged_back"
	default:
		return "unknown"
	}
}

// Deposit is a stored deposit eligible for a later dispute, resolve or
// chargeback. Amount is fixed at creation. Withdrawals are never
// stored: they cannot be disputed.
type Deposit struct {
	TxID     uint32
	ClientID uint16
	Amount   decimal.Decimal
	Status   DepositStatus
}

// NewDeposit creates a deposit record in the Normal status.
func NewDeposit(txID uint32, clientID uint16, amount decimal.Decimal) *Deposit {
	return &Deposit{
		TxID:     txID,
		ClientID: clientID,
		Amount:   amount,
		Status:   StatusNormal,
	}
}

// BeginDispute moves the deposit from Normal to UnderDispute. The
// referencing client must own the deposit.
func (d *Deposit) BeginDispute(clientID uint16) error {
	if d.ClientID != clientID {
		return ErrClientMismatch
	}
	if d.Status != StatusNormal {
		return ErrInvalidStatus
	}
	d.Status = StatusUnderDispute
	return nil
}

// Resolve moves the deposit from UnderDispute to the terminal Resolved
// status.
func (d *Deposit) Resolve(clientID uint16) error {
	if d.ClientID != clientID {
		return ErrClientMismatch
	}
	if d.Status != StatusUnderDispute {
		return ErrInvalidStatus
	}
	d.Status = StatusResolved
	return nil
}

// ChargeBack moves the deposit from UnderDispute to the terminal
// ChargedBack status.
func (d *Deposit) ChargeBack(clientID uint16) error {
	if d.ClientID != clientID {
		return ErrClientMismatch
	}
	if d.Status != StatusUnderDispute {
		return ErrInvalidStatus
	}
	d.Status = StatusChargedBack
	return nil
}
