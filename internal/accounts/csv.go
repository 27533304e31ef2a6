package accounts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/cleared-dev/qif/qif"
)

// Header is the CSV header for accounts.csv.
var Header = []string{"name", "type", "description"}

const (
	numFields = 3
	colName   = 0
	colType   = 1
	colDesc   = 2
)

// ReadAccounts reads accounts.csv.
func ReadAccounts(r io.Reader) ([]*qif.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []*qif.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes accounts.csv.
func WriteAccounts(w io.Writer, accounts []*qif.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct *qif.Account) []string {
	row := make([]string, numFields)
	row[colName] = acct.Name()
	row[colType] = acct.Type().String()
	row[colDesc] = acct.Description()
	return row
}

// UnmarshalAccount converts a CSV row to an Account. The type column holds
// the long-form type name ("CreditCard", not "CCard").
func UnmarshalAccount(record []string) (*qif.Account, error) {
	if len(record) != numFields {
		return nil, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if record[colName] == "" {
		return nil, errors.New("empty account name")
	}

	typ, err := qif.ParseAccountType(record[colType])
	if err != nil {
		return nil, fmt.Errorf("parsing type for %q: %w", record[colName], err)
	}

	return qif.NewAccount().
		WithName(record[colName]).
		WithAccountType(typ).
		WithDescription(record[colDesc]).
		Build(), nil
}
