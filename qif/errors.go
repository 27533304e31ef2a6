package qif

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAccountType is returned when a name matches no AccountType.
	ErrUnknownAccountType = errors.New("no matching account type")
	// ErrSplitSumMismatch is matched by every InvariantError.
	ErrSplitSumMismatch = errors.New("sum of splits does not equal transaction amount")
	// ErrNoAccount is returned when a transaction is built without an account.
	ErrNoAccount = errors.New("transaction has no account")
	// ErrInvalidAmount is returned when an amount cannot be held in minor units.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrAccountMismatch is returned when a transaction is written under another account's header.
	ErrAccountMismatch = errors.New("transaction belongs to a different account")
)

// InvariantError reports a transaction whose amount disagrees with its splits.
type InvariantError struct {
	Amount   int64
	SplitSum int64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: amount %s, splits %s", ErrSplitSumMismatch, FormatAmount(e.Amount), FormatAmount(e.SplitSum))
}

func (e *InvariantError) Unwrap() error {
	return ErrSplitSumMismatch
}
