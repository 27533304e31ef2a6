package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/qif/internal/id"
)

// LedgerRow is a single row in a split ledger CSV. Rows whose SplitID share a
// group form one transaction.
type LedgerRow struct {
	SplitID   string    // "<txn>" or "<txn><suffix>", e.g. "2025-01-001a"
	Date      time.Time
	Payee     string
	Memo      string
	Cleared   string
	Category  string
	SplitMemo string
	Amount    decimal.Decimal
	// Total is the declared transaction total, set on any row of a split
	// group. When valid it must equal the sum of the group's amounts.
	Total decimal.NullDecimal
}

// Group returns the transaction ID (SplitID without its letter suffix).
func (r LedgerRow) Group() string {
	return id.TxnID(r.SplitID)
}

// IsSplit reports whether the row carries a split suffix.
func (r LedgerRow) IsSplit() bool {
	return id.IsSplit(r.SplitID)
}
