package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/iho/payflow/internal/domain"
)

// ProcessorUseCase applies transaction records to the account store and
// deposit ledger, one record at a time, in arrival order. It never
// reorders, batches or rolls back: each Apply call either mutates the
// stores to completion or leaves them untouched.
type ProcessorUseCase struct {
	accounts AccountStore
	ledger   DepositLedger
}

// NewProcessorUseCase creates a processor over the given stores.
func NewProcessorUseCase(accounts AccountStore, ledger DepositLedger) *ProcessorUseCase {
	return &ProcessorUseCase{
		accounts: accounts,
		ledger:   ledger,
	}
}

// Stats summarizes one stream run.
type Stats struct {
	Processed int                       // records read from the source
	Applied   int                       // records that mutated state
	ByType    map[domain.RecordType]int // applied records per type
	Dropped   map[string]int            // silent no-ops per reason
}

// TotalDropped returns the number of records dropped across all reasons.
func (s Stats) TotalDropped() int {
	total := 0
	for _, n := range s.Dropped {
		total += n
	}
	return total
}

// DropReason maps a violated-precondition error to a short stable label
// used in stats and metrics.
func DropReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrAccountLocked):
		return "account_locked"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrUnknownTransaction):
		return "unknown_transaction"
	case errors.Is(err, domain.ErrDuplicateTransaction):
		return "duplicate_transaction"
	case errors.Is(err, domain.ErrClientMismatch):
		return "client_mismatch"
	case errors.Is(err, domain.ErrInvalidStatus):
		return "invalid_status"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	default:
		return "invalid_record"
	}
}

// Apply applies a single record. A non-nil error identifies the
// violated precondition; upstream data is trusted, so the streaming
// loop discards the record and moves on. Errors never abort the
// stream, they only feed the drop counters.
func (uc *ProcessorUseCase) Apply(rec domain.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	switch rec.Type {
	case domain.TypeDeposit:
		return uc.applyDeposit(rec)
	case domain.TypeWithdrawal:
		return uc.applyWithdrawal(rec)
	case domain.TypeDispute:
		return uc.applyDispute(rec)
	case domain.TypeResolve:
		return uc.applyResolve(rec)
	case domain.TypeChargeback:
		return uc.applyChargeback(rec)
	default:
		return domain.ErrUnknownRecordType
	}
}

// applyDeposit credits the client and stores the deposit for later
// dispute. The upstream feed guarantees tx id uniqueness; a duplicate
// id is a contract violation and drops the whole record before any
// balance moves.
func (uc *ProcessorUseCase) applyDeposit(rec domain.Record) error {
	if _, ok := uc.ledger.Lookup(rec.TxID); ok {
		return domain.ErrDuplicateTransaction
	}

	account := uc.accounts.GetOrCreate(rec.ClientID)
	if err := account.Credit(rec.Amount); err != nil {
		return err
	}

	return uc.ledger.Insert(domain.NewDeposit(rec.TxID, rec.ClientID, rec.Amount))
}

// applyWithdrawal debits the client. Withdrawals are applied and then
// forgotten, they are never stored for dispute.
func (uc *ProcessorUseCase) applyWithdrawal(rec domain.Record) error {
	account, ok := uc.accounts.Get(rec.ClientID)
	if !ok {
		return domain.ErrAccountNotFound
	}
	return account.Debit(rec.Amount)
}

func (uc *ProcessorUseCase) applyDispute(rec domain.Record) error {
	deposit, ok := uc.ledger.Lookup(rec.TxID)
	if !ok {
		return domain.ErrUnknownTransaction
	}
	account, ok := uc.accounts.Get(rec.ClientID)
	if !ok {
		return domain.ErrAccountNotFound
	}
	if err := deposit.BeginDispute(rec.ClientID); err != nil {
		return err
	}
	account.HoldFunds(deposit.Amount)
	return nil
}

func (uc *ProcessorUseCase) applyResolve(rec domain.Record) error {
	deposit, ok := uc.ledger.Lookup(rec.TxID)
	if !ok {
		return domain.ErrUnknownTransaction
	}
	account, ok := uc.accounts.Get(rec.ClientID)
	if !ok {
		return domain.ErrAccountNotFound
	}
	if err := deposit.Resolve(rec.ClientID); err != nil {
		return err
	}
	account.ReleaseFunds(deposit.Amount)
	return nil
}

func (uc *ProcessorUseCase) applyChargeback(rec domain.Record) error {
	deposit, ok := uc.ledger.Lookup(rec.TxID)
	if !ok {
		return domain.ErrUnknownTransaction
	}
	account, ok := uc.accounts.Get(rec.ClientID)
	if !ok {
		return domain.ErrAccountNotFound
	}
	if err := deposit.ChargeBack(rec.ClientID); err != nil {
		return err
	}
	account.Confiscate(deposit.Amount)
	return nil
}

// Run drains the source one record at a time. The source is consumed
// lazily and exactly once; the full stream is never buffered. A read
// failure ends the run and whatever was applied so far stands, ready
// to be snapshotted as-is.
func (uc *ProcessorUseCase) Run(ctx context.Context, source RecordSource) (Stats, error) {
	stats := Stats{
		ByType:  make(map[domain.RecordType]int),
		Dropped: make(map[string]int),
	}

	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		rec, err := source.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}

		stats.Processed++
		if err := uc.Apply(rec); err != nil {
			stats.Dropped[DropReason(err)]++
			continue
		}
		stats.Applied++
		stats.ByType[rec.Type]++
	}
}

// WriteSnapshot streams the final state of every known account into the
// writer. Call it once, after the input is exhausted.
func (uc *ProcessorUseCase) WriteSnapshot(w SnapshotWriter) error {
	for _, account := range uc.accounts.Accounts() {
		if err := w.WriteAccount(account); err != nil {
			return err
		}
	}
	return nil
}
