package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is one row of a bank export, as produced by an
// importer.Parser.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = money out
	Type        string          // bank's own code: ACH_DEBIT, CHECK, DEBIT...
	CheckNumber string
	Memo        string
}

// MemoOrCheck returns Memo, or "Check <n>" when there is no memo but the row
// carries a check number.
func (t BankTransaction) MemoOrCheck() string {
	if t.Memo == "" && t.CheckNumber != "" {
		return "Check " + t.CheckNumber
	}
	return t.Memo
}
