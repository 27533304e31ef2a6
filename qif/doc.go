// Package qif builds accounts, transactions and splits and renders them as
// QIF (Quicken Interchange Format) records.
//
// Values are assembled with value-type builders and finalized with Build.
// Finalized values are immutable and render deterministically through String.
// Amounts are signed integers in minor units (cents).
//
// Field values are written verbatim. A newline inside a payee, memo or
// category corrupts the record; callers must not pass one.
package qif
