package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/qif/internal/model"
)

// GenericParser reads a minimal "date,payee,amount[,memo]" CSV with ISO
// dates. The header row is required and columns are matched by name.
type GenericParser struct{}

const genericDateFormat = "2006-01-02"

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic CSV and returns BankTransactions.
func (p *GenericParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading generic CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols, err := genericColumns(records[0])
	if err != nil {
		return nil, err
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		txn, err := cols.parse(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

type genericCols struct {
	date, payee, amount, memo int
}

func genericColumns(header []string) (genericCols, error) {
	cols := genericCols{date: -1, payee: -1, amount: -1, memo: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "date":
			cols.date = i
		case "payee", "description":
			cols.payee = i
		case "amount":
			cols.amount = i
		case "memo":
			cols.memo = i
		}
	}
	if cols.date < 0 || cols.payee < 0 || cols.amount < 0 {
		return cols, fmt.Errorf("header must name date, payee and amount columns, got %q", strings.Join(header, ","))
	}
	return cols, nil
}

func (c genericCols) parse(rec []string) (model.BankTransaction, error) {
	field := func(i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	date, err := time.Parse(genericDateFormat, field(c.date))
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", field(c.date), err)
	}

	amount, err := decimal.NewFromString(field(c.amount))
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q: %w", field(c.amount), err)
	}

	return model.BankTransaction{
		Date:        date,
		Description: field(c.payee),
		Amount:      amount,
		Memo:        field(c.memo),
	}, nil
}
