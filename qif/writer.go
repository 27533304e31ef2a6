package qif

import (
	"bufio"
	"fmt"
	"io"
)

// Writer writes QIF records to an underlying io.Writer. Output is buffered;
// call Flush when done. The first error is sticky and returned by every
// later call. A Writer is not safe for concurrent use.
type Writer struct {
	w   *bufio.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteAccount writes the "!Account" header for a.
func (w *Writer) WriteAccount(a *Account) error {
	return w.write(a.String())
}

// WriteTransaction writes one transaction record.
func (w *Writer) WriteTransaction(t *Transaction) error {
	return w.write(t.String())
}

// WriteAccountBlock writes the header for a followed by txns. Every
// transaction must reference a itself; nothing is written otherwise.
func (w *Writer) WriteAccountBlock(a *Account, txns []*Transaction) error {
	for i, t := range txns {
		if t.Account() != a {
			return fmt.Errorf("transaction %d: %w", i, ErrAccountMismatch)
		}
	}
	if err := w.WriteAccount(a); err != nil {
		return err
	}
	for _, t := range txns {
		if err := w.WriteTransaction(t); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

func (w *Writer) write(s string) error {
	if w.err != nil {
		return w.err
	}
	if _, err := w.w.WriteString(s); err != nil {
		w.err = fmt.Errorf("writing record: %w", err)
	}
	return w.err
}
