package ledger

import (
	"fmt"

	"github.com/cleared-dev/qif/internal/model"
	"github.com/cleared-dev/qif/qif"
)

// Checks performed by ValidateRows.
const (
	CheckGroupID    = "group-id"
	CheckDuplicate  = "duplicate"
	CheckPrecision  = "precision"
	CheckMixed      = "mixed"
	CheckConsistent = "consistent"
	CheckTotal      = "total"
)

// ValidationError describes a single problem in a ledger.
type ValidationError struct {
	Check       string
	TxnID       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Check, e.TxnID, e.Description)
}

// group is the rows of one transaction, in file order.
type group struct {
	id   string
	rows []model.LedgerRow
}

func (g group) split() bool {
	return g.rows[0].IsSplit()
}

// groupRows groups rows by transaction ID, ordered by first appearance.
func groupRows(rows []model.LedgerRow) []group {
	index := make(map[string]int)
	var groups []group
	for _, row := range rows {
		id := row.Group()
		i, seen := index[id]
		if !seen {
			i = len(groups)
			index[id] = i
			groups = append(groups, group{id: id})
		}
		groups[i].rows = append(groups[i].rows, row)
	}
	return groups
}

// ValidateRows checks a whole ledger and returns every problem found.
func ValidateRows(rows []model.LedgerRow) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.Group() == "" {
			errs = append(errs, ValidationError{
				Check:       CheckGroupID,
				TxnID:       row.SplitID,
				Description: "split_id must start with a transaction ID",
			})
		}
		if seen[row.SplitID] {
			errs = append(errs, ValidationError{
				Check:       CheckDuplicate,
				TxnID:       row.SplitID,
				Description: "split_id appears more than once",
			})
		}
		seen[row.SplitID] = true

		if _, err := qif.AmountFromDecimal(row.Amount); err != nil {
			errs = append(errs, ValidationError{
				Check:       CheckPrecision,
				TxnID:       row.SplitID,
				Description: err.Error(),
			})
		}
		if row.Total.Valid {
			if _, err := qif.AmountFromDecimal(row.Total.Decimal); err != nil {
				errs = append(errs, ValidationError{
					Check:       CheckPrecision,
					TxnID:       row.SplitID,
					Description: "total: " + err.Error(),
				})
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}

	// Transaction-level checks need well-formed rows.
	probe := qif.NewAccount().Build()
	for _, g := range groupRows(rows) {
		gerrs := validateGroup(g)
		if len(gerrs) == 0 {
			if _, err := buildGroup(probe, g); err != nil {
				gerrs = append(gerrs, ValidationError{
					Check:       CheckTotal,
					TxnID:       g.id,
					Description: err.Error(),
				})
			}
		}
		errs = append(errs, gerrs...)
	}
	return errs
}

func validateGroup(g group) []ValidationError {
	var errs []ValidationError
	first := g.rows[0]

	var total *model.LedgerRow
	for i, row := range g.rows {
		if row.IsSplit() != first.IsSplit() {
			errs = append(errs, ValidationError{
				Check:       CheckMixed,
				TxnID:       g.id,
				Description: fmt.Sprintf("%s mixes split and unsplit rows", row.SplitID),
			})
		}
		if !row.Date.Equal(first.Date) || row.Payee != first.Payee || row.Memo != first.Memo || row.Cleared != first.Cleared {
			errs = append(errs, ValidationError{
				Check:       CheckConsistent,
				TxnID:       g.id,
				Description: fmt.Sprintf("%s disagrees with %s on date, payee, memo or cleared", row.SplitID, first.SplitID),
			})
		}
		if !row.Total.Valid {
			continue
		}
		if total != nil && !total.Total.Decimal.Equal(row.Total.Decimal) {
			errs = append(errs, ValidationError{
				Check:       CheckConsistent,
				TxnID:       g.id,
				Description: fmt.Sprintf("totals %s and %s differ", total.Total.Decimal.StringFixed(2), row.Total.Decimal.StringFixed(2)),
			})
		}
		total = &g.rows[i]
	}

	if !g.split() && total != nil && !total.Total.Decimal.Equal(first.Amount) {
		errs = append(errs, ValidationError{
			Check:       CheckTotal,
			TxnID:       g.id,
			Description: fmt.Sprintf("total %s != amount %s", total.Total.Decimal.StringFixed(2), first.Amount.StringFixed(2)),
		})
	}
	return errs
}
