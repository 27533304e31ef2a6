// Package ledger reads split-ledger CSV files and turns them into QIF
// transactions.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/qif/internal/model"
)

// Header is the CSV header for a split ledger.
const Header = "split_id,date,payee,memo,cleared,category,split_memo,amount,total"

const (
	numFields    = 9
	dateFormat   = "2006-01-02"
	colSplitID   = 0
	colDate      = 1
	colPayee     = 2
	colMemo      = 3
	colCleared   = 4
	colCategory  = 5
	colSplitMemo = 6
	colAmount    = 7
	colTotal     = 8
)

// ReadRows reads all rows from a ledger CSV reader.
func ReadRows(r io.Reader) ([]model.LedgerRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var rows []model.LedgerRow
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRows writes rows to a ledger CSV writer (including header).
func WriteRows(w io.Writer, rows []model.LedgerRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRow converts a LedgerRow to a CSV row.
func MarshalRow(row model.LedgerRow) []string {
	rec := make([]string, numFields)
	rec[colSplitID] = row.SplitID
	rec[colDate] = row.Date.Format(dateFormat)
	rec[colPayee] = row.Payee
	rec[colMemo] = row.Memo
	rec[colCleared] = row.Cleared
	rec[colCategory] = row.Category
	rec[colSplitMemo] = row.SplitMemo
	rec[colAmount] = row.Amount.StringFixed(2)
	if row.Total.Valid {
		rec[colTotal] = row.Total.Decimal.StringFixed(2)
	}
	return rec
}

// UnmarshalRow converts a CSV row to a LedgerRow.
func UnmarshalRow(record []string) (model.LedgerRow, error) {
	if len(record) != numFields {
		return model.LedgerRow{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.LedgerRow{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.LedgerRow{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	var total decimal.NullDecimal
	if record[colTotal] != "" {
		total.Decimal, err = decimal.NewFromString(record[colTotal])
		if err != nil {
			return model.LedgerRow{}, fmt.Errorf("parsing total %q: %w", record[colTotal], err)
		}
		total.Valid = true
	}

	return model.LedgerRow{
		SplitID:   record[colSplitID],
		Date:      date,
		Payee:     record[colPayee],
		Memo:      record[colMemo],
		Cleared:   record[colCleared],
		Category:  record[colCategory],
		SplitMemo: record[colSplitMemo],
		Amount:    amount,
		Total:     total,
	}, nil
}
