package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/iho/payflow/internal/domain"
)

// Snapshot writes the final account snapshot as CSV with amounts fixed
// at four fractional digits.
type Snapshot struct {
	w         *csv.Writer
	wroteHead bool
}

// NewSnapshot creates a Snapshot writing to w.
func NewSnapshot(w io.Writer) *Snapshot {
	return &Snapshot{w: csv.NewWriter(w)}
}

// WriteAccount writes one account row, emitting the header first if
// needed.
func (s *Snapshot) WriteAccount(account *domain.Account) error {
	if err := s.writeHeader(); err != nil {
		return err
	}
	return s.w.Write([]string{
		strconv.FormatUint(uint64(account.ClientID), 10),
		account.Available.StringFixed(4),
		account.Held.StringFixed(4),
		account.Total().StringFixed(4),
		strconv.FormatBool(account.Locked),
	})
}

// Flush writes any buffered rows. An empty snapshot still gets the
// header row.
func (s *Snapshot) Flush() error {
	if err := s.writeHeader(); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *Snapshot) writeHeader() error {
	if s.wroteHead {
		return nil
	}
	s.wroteHead = true
	return s.w.Write([]string{"client", "available", "held", "total", "locked"})
}
