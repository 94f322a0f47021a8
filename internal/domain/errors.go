package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountLocked     = errors.New("account is locked")
	ErrInsufficientFunds = errors.New("withdrawal exceeds available funds")

	// Deposit ledger errors
	ErrUnknownTransaction   = errors.New("referenced transaction not found")
	ErrDuplicateTransaction = errors.New("transaction id already recorded")
	ErrClientMismatch       = errors.New("transaction belongs to a different client")
	ErrInvalidStatus        = errors.New("transaction status does not allow this transition")

	// Record errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrUnknownRecordType = errors.New("unknown record type")
)
