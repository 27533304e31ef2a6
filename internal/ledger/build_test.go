package ledger

import (
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/qif/internal/model"
	"github.com/cleared-dev/qif/qif"
)

func TestTransactions_Testdata(t *testing.T) {
	f, err := os.Open("../../testdata/ledger.csv")
	require.NoError(t, err)
	defer f.Close()

	rows, err := ReadRows(f)
	require.NoError(t, err)

	acct := qif.NewAccount().WithName("Chase Checking").Build()
	txns, err := Transactions(acct, rows)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "!Type:Bank\nD01/03/2025\nPGitHub\nMPro plan\nLSoftware\nCX\nT-4.00\n^\n", txns[0].String())

	assert.Equal(t, `!Type:Bank
D01/06/2025
PCostco
MMonthly run
L
C
T-146.49
SGroceries
EFood
$-84.10
SHousehold
EPaper goods
$-22.40
SOffice
EPrinter ink
$-39.99
^
`, txns[1].String())

	assert.Equal(t, int64(350000), txns[2].Total())
	assert.Equal(t, "Income:Consulting", txns[2].Category())
	assert.Same(t, acct, txns[2].Account())
}

func TestTransactions_SplitWithoutDeclaredTotal(t *testing.T) {
	acct := qif.NewAccount().Build()
	txns, err := Transactions(acct, []model.LedgerRow{
		splitRow("T1a", "Food", "-10.00"),
		splitRow("T1b", "Home", "-5.25"),
	})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, int64(-1525), txns[0].Total())
	assert.Len(t, txns[0].Splits(), 2)
}

func TestTransactions_GroupsInterleavedRows(t *testing.T) {
	acct := qif.NewAccount().Build()
	txns, err := Transactions(acct, []model.LedgerRow{
		splitRow("T1a", "Food", "-1.00"),
		splitRow("T2", "Fuel", "-40.00"),
		splitRow("T1b", "Home", "-2.00"),
	})
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, int64(-300), txns[0].Total())
	assert.Equal(t, int64(-4000), txns[1].Total())
}

func TestTransactions_ValidationFailure(t *testing.T) {
	a := splitRow("T1a", "X", "-1.00")
	a.Total = decimal.NewNullDecimal(dec("-9.99"))

	_, err := Transactions(qif.NewAccount().Build(), []model.LedgerRow{a, splitRow("T1b", "Y", "-2.00")})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "validation failed: total [T1]"))
}

func TestTransactions_NoAccount(t *testing.T) {
	_, err := Transactions(nil, []model.LedgerRow{splitRow("T1", "X", "1.00")})
	assert.ErrorIs(t, err, qif.ErrNoAccount)
}
