package ledger

import (
	"fmt"
	"strings"

	"github.com/cleared-dev/qif/internal/model"
	"github.com/cleared-dev/qif/qif"
)

// Transactions validates rows and builds one QIF transaction per group on
// acct. Rows with a split suffix ("...a", "...b") become splits; a lone
// unsuffixed row becomes an unsplit transaction using its category.
func Transactions(acct *qif.Account, rows []model.LedgerRow) ([]*qif.Transaction, error) {
	if verrs := ValidateRows(rows); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	groups := groupRows(rows)
	txns := make([]*qif.Transaction, 0, len(groups))
	for _, g := range groups {
		t, err := buildGroup(acct, g)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", g.id, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

func buildGroup(acct *qif.Account, g group) (*qif.Transaction, error) {
	first := g.rows[0]
	b := qif.NewTransaction(acct).
		WithDate(first.Date).
		WithPayee(first.Payee).
		WithMemo(first.Memo).
		WithClearedStatus(first.Cleared)

	if !g.split() {
		amount, err := qif.AmountFromDecimal(first.Amount)
		if err != nil {
			return nil, err
		}
		return b.WithCategory(first.Category).WithAmount(amount).Build()
	}

	var declared *int64
	for _, row := range g.rows {
		amount, err := qif.AmountFromDecimal(row.Amount)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", row.SplitID, err)
		}
		b = b.WithSplit(qif.NewSplit().
			WithCategory(row.Category).
			WithMemo(row.SplitMemo).
			WithAmount(amount).
			Build())

		if row.Total.Valid {
			total, err := qif.AmountFromDecimal(row.Total.Decimal)
			if err != nil {
				return nil, fmt.Errorf("%s total: %w", row.SplitID, err)
			}
			declared = &total
		}
	}
	if declared != nil {
		b = b.WithAmount(*declared)
	}
	return b.Build()
}
