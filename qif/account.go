package qif

import (
	"fmt"
	"strings"
)

// AccountType is the QIF account type. The zero value is Bank.
type AccountType int

const (
	Bank AccountType = iota
	Cash
	CreditCard
	Investment
	AssetAccount
	LiabilityAccount
)

var accountTypeNames = [...]string{
	Bank:             "Bank",
	Cash:             "Cash",
	CreditCard:       "CreditCard",
	Investment:       "Investment",
	AssetAccount:     "AssetAccount",
	LiabilityAccount: "LiabilityAccount",
}

var accountTypeTags = [...]string{
	Bank:             "Bank",
	Cash:             "Cash",
	CreditCard:       "CCard",
	Investment:       "Invst",
	AssetAccount:     "Oth A",
	LiabilityAccount: "Oth L",
}

// AccountTypes returns every account type in declaration order.
func AccountTypes() []AccountType {
	return []AccountType{Bank, Cash, CreditCard, Investment, AssetAccount, LiabilityAccount}
}

func (t AccountType) valid() bool {
	return t >= Bank && t <= LiabilityAccount
}

// Tag returns the short code written to "!Type:" and account "T" lines.
func (t AccountType) Tag() string {
	if !t.valid() {
		return t.String()
	}
	return accountTypeTags[t]
}

// String returns the long-form name accepted by ParseAccountType.
func (t AccountType) String() string {
	if !t.valid() {
		return fmt.Sprintf("AccountType(%d)", int(t))
	}
	return accountTypeNames[t]
}

// ParseAccountType maps a long-form name ("Bank", "CreditCard", ...) to its
// AccountType. Short tags such as "CCard" are not accepted.
func ParseAccountType(s string) (AccountType, error) {
	for i, name := range accountTypeNames {
		if s == name {
			return AccountType(i), nil
		}
	}
	return Bank, fmt.Errorf("%w: %q", ErrUnknownAccountType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t AccountType) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAccountType, int(t))
	}
	return []byte(accountTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *AccountType) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Account is a named ledger account. It is immutable once built and may be
// shared by any number of transactions.
type Account struct {
	name        string
	accountType AccountType
	description string // informational only, never rendered
}

// AccountBuilder assembles an Account. Setters return a modified copy.
type AccountBuilder struct {
	acct Account
}

// NewAccount starts an unnamed Bank account.
func NewAccount() AccountBuilder {
	return AccountBuilder{}
}

func (b AccountBuilder) WithName(name string) AccountBuilder {
	b.acct.name = name
	return b
}

func (b AccountBuilder) WithDescription(description string) AccountBuilder {
	b.acct.description = description
	return b
}

func (b AccountBuilder) WithAccountType(t AccountType) AccountBuilder {
	b.acct.accountType = t
	return b
}

// Build finalizes the account.
func (b AccountBuilder) Build() *Account {
	a := b.acct
	return &a
}

func (a *Account) Name() string        { return a.name }
func (a *Account) Type() AccountType   { return a.accountType }
func (a *Account) Description() string { return a.description }

// String renders the "!Account" header record.
func (a *Account) String() string {
	var sb strings.Builder
	sb.WriteString(accountHeader)
	sb.WriteByte('\n')
	line(&sb, "N", a.name)
	line(&sb, "T", a.accountType.Tag())
	sb.WriteString(endOfRecord)
	sb.WriteByte('\n')
	return sb.String()
}
