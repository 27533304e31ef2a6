package accounts

import "github.com/cleared-dev/qif/qif"

// DefaultAccounts returns a starter set with one account of each type.
func DefaultAccounts() []*qif.Account {
	return []*qif.Account{
		qif.NewAccount().WithName("Checking").WithAccountType(qif.Bank).WithDescription("Primary checking account").Build(),
		qif.NewAccount().WithName("Wallet").WithAccountType(qif.Cash).WithDescription("Cash on hand").Build(),
		qif.NewAccount().WithName("Credit Card").WithAccountType(qif.CreditCard).WithDescription("Everyday credit card").Build(),
		qif.NewAccount().WithName("Brokerage").WithAccountType(qif.Investment).Build(),
		qif.NewAccount().WithName("House").WithAccountType(qif.AssetAccount).Build(),
		qif.NewAccount().WithName("Mortgage").WithAccountType(qif.LiabilityAccount).Build(),
	}
}
