package dto

import (
	"github.com/iho/payflow/internal/domain"
	"github.com/iho/payflow/internal/usecase"
)

// AccountSnapshot is one client's final balances. Amounts are rendered
// as strings with four fractional digits to keep them exact on the
// wire.
type AccountSnapshot struct {
	ClientID  uint16 `json:"client"`
	Available string `json:"available"`
	Held      string `json:"held"`
	Total     string `json:"total"`
	Locked    bool   `json:"locked"`
}

// AccountFromDomain converts a domain account to a snapshot row.
func AccountFromDomain(a *domain.Account) AccountSnapshot {
	return AccountSnapshot{
		ClientID:  a.ClientID,
		Available: a.Available.StringFixed(4),
		Held:      a.Held.StringFixed(4),
		Total:     a.Total().StringFixed(4),
		Locked:    a.Locked,
	}
}

// AccountsFromDomain converts domain accounts to snapshot rows.
func AccountsFromDomain(accounts []*domain.Account) []AccountSnapshot {
	result := make([]AccountSnapshot, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// BatchStats summarizes one processed batch.
type BatchStats struct {
	Processed   int            `json:"processed"`
	Applied     int            `json:"applied"`
	Dropped     map[string]int `json:"dropped,omitempty"`
	SkippedRows int            `json:"skipped_rows,omitempty"`
}

// StatsFromUseCase converts run stats to the response shape.
func StatsFromUseCase(stats usecase.Stats, skippedRows int) BatchStats {
	out := BatchStats{
		Processed:   stats.Processed,
		Applied:     stats.Applied,
		SkippedRows: skippedRows,
	}
	if len(stats.Dropped) > 0 {
		out.Dropped = stats.Dropped
	}
	return out
}

// BatchResponse is the result of processing one uploaded batch.
type BatchResponse struct {
	BatchID  string            `json:"batch_id"`
	Stats    BatchStats        `json:"stats"`
	Accounts []AccountSnapshot `json:"accounts"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
