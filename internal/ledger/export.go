package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/qif/internal/id"
	"github.com/cleared-dev/qif/internal/model"
	"github.com/cleared-dev/qif/qif"
)

// FromTransactions converts transactions into ledger rows, numbering them
// per calendar month in the order given. Split transactions produce one row
// per split with the total declared on the first row.
func FromTransactions(txns []*qif.Transaction) []model.LedgerRow {
	seq := make(map[[2]int]int)
	var rows []model.LedgerRow
	for _, t := range txns {
		d := t.Date()
		key := [2]int{d.Year(), int(d.Month())}
		seq[key]++
		txnID := id.Txn(key[0], key[1], seq[key])

		base := model.LedgerRow{
			Date:    d,
			Payee:   t.Payee(),
			Memo:    t.Memo(),
			Cleared: t.ClearedStatus(),
		}

		splits := t.Splits()
		if len(splits) == 0 {
			row := base
			row.SplitID = txnID
			row.Category = t.Category()
			row.Amount = qif.AmountToDecimal(t.Total())
			rows = append(rows, row)
			continue
		}

		for i, s := range splits {
			row := base
			row.SplitID = id.Split(txnID, i)
			row.Category = s.Category()
			row.SplitMemo = s.Memo()
			row.Amount = qif.AmountToDecimal(s.Amount())
			if i == 0 {
				row.Total = decimal.NewNullDecimal(qif.AmountToDecimal(t.Total()))
			}
			rows = append(rows, row)
		}
	}
	return rows
}
