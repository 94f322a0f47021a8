package memory

import (
	"github.com/iho/payflow/internal/domain"
)

// DepositLedger holds the disputable transaction records keyed by tx
// id. Only deposits ever land here; withdrawals are applied and
// forgotten, so memory is bounded by the number of distinct deposits.
type DepositLedger struct {
	deposits map[uint32]*domain.Deposit
}

// NewDepositLedger creates an empty DepositLedger.
func NewDepositLedger() *DepositLedger {
	return &DepositLedger{
		deposits: make(map[uint32]*domain.Deposit),
	}
}

// Insert stores a deposit. The tx id must be new; duplicates are a
// feed contract violation and are rejected without touching the
// existing record.
func (l *DepositLedger) Insert(deposit *domain.Deposit) error {
	if _, ok := l.deposits[deposit.TxID]; ok {
		return domain.ErrDuplicateTransaction
	}
	l.deposits[deposit.TxID] = deposit
	return nil
}

// Lookup returns the deposit for txID if it exists. Records are never
// removed, so resolved and charged-back deposits stay queryable.
func (l *DepositLedger) Lookup(txID uint32) (*domain.Deposit, bool) {
	deposit, ok := l.deposits[txID]
	return deposit, ok
}

// Len returns the number of stored deposits.
func (l *DepositLedger) Len() int {
	return len(l.deposits)
}
