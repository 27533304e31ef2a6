// Package id formats and parses ledger split IDs.
//
// A transaction ID is "YYYY-MM-NNN". Rows of a split transaction append a
// lowercase suffix: "2025-01-001a", "2025-01-001b", ... "2025-01-001z",
// "2025-01-001aa".
package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Txn returns a transaction ID like "2025-01-001".
func Txn(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// Split returns the ID of the n-th split (0-based) of txnID.
func Split(txnID string, n int) string {
	return txnID + suffix(n)
}

// suffix maps 0->"a", 25->"z", 26->"aa", 27->"ab".
func suffix(n int) string {
	var buf []byte
	for n >= 0 {
		buf = append(buf, byte('a'+n%26))
		n = n/26 - 1
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Parse parses "2025-01-001" into year, month, seq. A split suffix is ignored.
func Parse(id string) (year, month, seq int, err error) {
	parts := strings.SplitN(TxnID(id), "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid transaction ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in transaction ID %q: %w", id, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in transaction ID %q: %w", id, err)
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("month %d out of range in transaction ID %q", month, id)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in transaction ID %q: %w", id, err)
	}

	return year, month, seq, nil
}

// TxnID strips the split suffix from a split ID.
// "2025-01-001a" -> "2025-01-001"
func TxnID(splitID string) string {
	i := len(splitID)
	for i > 0 && splitID[i-1] >= 'a' && splitID[i-1] <= 'z' {
		i--
	}
	return splitID[:i]
}

// IsSplit reports whether splitID carries a split suffix.
func IsSplit(splitID string) bool {
	return len(TxnID(splitID)) != len(splitID)
}
