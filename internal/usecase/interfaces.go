package usecase

import (
	"github.com/iho/payflow/internal/domain"
)

// AccountStore owns one account per client id. Accounts are created
// lazily on first reference and never destroyed.
type AccountStore interface {
	GetOrCreate(clientID uint16) *domain.Account
	Get(clientID uint16) (*domain.Account, bool)
	// Accounts returns every known account in insertion order.
	Accounts() []*domain.Account
	Len() int
}

// DepositLedger owns the disputable transaction records. Only deposits
// are stored, which bounds memory to the number of distinct deposits.
type DepositLedger interface {
	// Insert stores a deposit, returning ErrDuplicateTransaction if the
	// tx id is already present.
	Insert(deposit *domain.Deposit) error
	Lookup(txID uint32) (*domain.Deposit, bool)
	Len() int
}

// RecordSource is a pull-based, forward-only, single-pass feed of
// parsed records. Next returns io.EOF once the feed is exhausted.
type RecordSource interface {
	Next() (domain.Record, error)
}

// SnapshotWriter consumes the final account snapshot, one account at a
// time, exactly once per run.
type SnapshotWriter interface {
	WriteAccount(account *domain.Account) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
