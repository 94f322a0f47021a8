// Package csvio adapts the engine's record and snapshot boundaries to
// CSV. The feed side is the upstream transaction stream, the snapshot
// side renders the final account state.
package csvio

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/payflow/internal/domain"
)

// Feed reads transaction rows of the form
//
//	type,client,tx,amount
//
// where amount is present only for deposits and withdrawals. Fields
// are whitespace-trimmed and a variable column count is tolerated;
// dispute, resolve and chargeback rows commonly omit the amount column
// entirely. Rows that cannot be parsed are skipped and counted, never
// fatal. Feed is forward-only and reads one row per Next call, so the
// stream is never buffered in full.
type Feed struct {
	r         *csv.Reader
	sawHeader bool
	skipped   int
}

// NewFeed creates a Feed over r.
func NewFeed(r io.Reader) *Feed {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Feed{r: cr}
}

// Next returns the next well-formed record, or io.EOF once the stream
// is exhausted. Any other error means the underlying reader failed and
// the stream cannot continue.
func (f *Feed) Next() (domain.Record, error) {
	for {
		row, err := f.r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return domain.Record{}, io.EOF
			}
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// One bad row does not poison the stream.
				f.skipped++
				continue
			}
			return domain.Record{}, err
		}

		if !f.sawHeader {
			f.sawHeader = true
			if len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "type") {
				continue
			}
		}

		rec, ok := f.parse(row)
		if !ok {
			f.skipped++
			continue
		}
		return rec, nil
	}
}

// Skipped reports how many malformed rows were dropped so far.
func (f *Feed) Skipped() int {
	return f.skipped
}

func (f *Feed) parse(row []string) (domain.Record, bool) {
	for i := range row {
		row[i] = strings.TrimSpace(row[i])
	}
	if len(row) < 3 {
		return domain.Record{}, false
	}

	recordType, err := domain.ParseRecordType(strings.ToLower(row[0]))
	if err != nil {
		return domain.Record{}, false
	}
	clientID, err := strconv.ParseUint(row[1], 10, 16)
	if err != nil {
		return domain.Record{}, false
	}
	txID, err := strconv.ParseUint(row[2], 10, 32)
	if err != nil {
		return domain.Record{}, false
	}

	rec := domain.Record{
		Type:     recordType,
		ClientID: uint16(clientID),
		TxID:     uint32(txID),
	}

	if recordType.MovesFunds() {
		if len(row) < 4 || row[3] == "" {
			return domain.Record{}, false
		}
		amount, err := decimal.NewFromString(row[3])
		if err != nil {
			return domain.Record{}, false
		}
		rec.Amount = amount
	}

	return rec, true
}
