package domain

import "github.com/shopspring/decimal"

// RecordType identifies one of the five transaction record types.
type RecordType string

const (
	TypeDeposit    RecordType = "deposit"
	TypeWithdrawal RecordType = "withdrawal"
	TypeDispute    RecordType = "dispute"
	TypeResolve    RecordType = "resolve"
	TypeChargeback RecordType = "chargeback"
)

// ParseRecordType converts a feed value into a RecordType.
func ParseRecordType(s string) (RecordType, error) {
	switch t := RecordType(s); t {
	case TypeDeposit, TypeWithdrawal, TypeDispute, TypeResolve, TypeChargeback:
		return t, nil
	default:
		return "", ErrUnknownRecordType
	}
}

// MovesFunds reports whether records of this type carry an amount.
func (t RecordType) MovesFunds() bool {
	return t == TypeDeposit || t == TypeWithdrawal
}

// Record is one parsed input record from the feed. Amount is
// meaningful only when the type moves funds; dispute, resolve and
// chargeback rows reference an earlier transaction instead.
type Record struct {
	Type     RecordType
	ClientID uint16
	TxID     uint32
	Amount   decimal.Decimal
}

// Validate checks the record shape before it reaches the processor.
func (r Record) Validate() error {
	if _, err := ParseRecordType(string(r.Type)); err != nil {
		return err
	}
	if r.Type.MovesFunds() && !r.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
