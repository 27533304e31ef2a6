package qif

import (
	"slices"
	"strings"
	"time"
)

// now is replaced in tests.
var now = time.Now

// Transaction is a single QIF transaction bound to an Account. The account
// is shared, never copied.
type Transaction struct {
	account *Account
	// Calendar date at midnight UTC; QIF carries no time of day.
	date   time.Time
	amount int64
	payee  string
	memo   string
	// Category is used for unsplit transactions; split transactions
	// categorize per split and normally leave this empty.
	category      string
	clearedStatus string
	splits        []Split
}

// TransactionBuilder assembles a Transaction. Setters return a modified copy,
// so a builder can be forked without the copies affecting each other.
type TransactionBuilder struct {
	txn Transaction
}

// NewTransaction starts a transaction on acct dated today.
func NewTransaction(acct *Account) TransactionBuilder {
	return TransactionBuilder{txn: Transaction{
		account: acct,
		date:    calendarDate(now()),
	}}
}

// calendarDate keeps the year, month and day of t as seen in t's location.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WithDate sets the date. Any time of day is discarded.
func (b TransactionBuilder) WithDate(date time.Time) TransactionBuilder {
	b.txn.date = calendarDate(date)
	return b
}

// WithAmount sets the total in minor units. When splits are attached the
// total must still match their sum at Build.
func (b TransactionBuilder) WithAmount(minor int64) TransactionBuilder {
	b.txn.amount = minor
	return b
}

func (b TransactionBuilder) WithPayee(payee string) TransactionBuilder {
	b.txn.payee = payee
	return b
}

func (b TransactionBuilder) WithMemo(memo string) TransactionBuilder {
	b.txn.memo = memo
	return b
}

func (b TransactionBuilder) WithCategory(category string) TransactionBuilder {
	b.txn.category = category
	return b
}

func (b TransactionBuilder) WithClearedStatus(status string) TransactionBuilder {
	b.txn.clearedStatus = status
	return b
}

// WithSplit appends s and adds its amount to the running total.
func (b TransactionBuilder) WithSplit(s Split) TransactionBuilder {
	b.txn.splits = append(slices.Clip(b.txn.splits), s)
	b.txn.amount += s.amount
	return b
}

// WithSplits replaces all splits with a copy of splits and sets the total
// to their sum.
func (b TransactionBuilder) WithSplits(splits []Split) TransactionBuilder {
	b.txn.splits = slices.Clone(splits)
	b.txn.amount = sumSplits(splits)
	return b
}

// Total returns the pending amount in minor units.
func (b TransactionBuilder) Total() int64 {
	return b.txn.amount
}

// Build finalizes the transaction. If any splits are attached, the amount
// must equal their sum exactly; otherwise an *InvariantError is returned.
// An unsplit transaction's amount is accepted as given.
func (b TransactionBuilder) Build() (*Transaction, error) {
	if b.txn.account == nil {
		return nil, ErrNoAccount
	}
	if len(b.txn.splits) > 0 {
		if sum := sumSplits(b.txn.splits); sum != b.txn.amount {
			return nil, &InvariantError{Amount: b.txn.amount, SplitSum: sum}
		}
	}
	t := b.txn
	t.splits = slices.Clip(t.splits)
	return &t, nil
}

func (t *Transaction) Account() *Account     { return t.account }
func (t *Transaction) Date() time.Time       { return t.date }
func (t *Transaction) Total() int64          { return t.amount }
func (t *Transaction) Payee() string         { return t.payee }
func (t *Transaction) Memo() string          { return t.memo }
func (t *Transaction) Category() string      { return t.category }
func (t *Transaction) ClearedStatus() string { return t.clearedStatus }

// Splits returns a copy of the splits in insertion order.
func (t *Transaction) Splits() []Split {
	return slices.Clone(t.splits)
}

// String renders the "!Type:" record including any split lines.
func (t *Transaction) String() string {
	var sb strings.Builder
	line(&sb, typeHeader, t.account.Type().Tag())
	line(&sb, "D", t.date.Format(dateLayout))
	line(&sb, "P", t.payee)
	line(&sb, "M", t.memo)
	line(&sb, "L", t.category)
	line(&sb, "C", t.clearedStatus)
	line(&sb, "T", FormatAmount(t.amount))
	for _, s := range t.splits {
		s.render(&sb)
	}
	sb.WriteString(endOfRecord)
	sb.WriteByte('\n')
	return sb.String()
}
