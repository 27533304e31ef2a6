// Package convert turns parsed bank rows into QIF transactions and
// writes them out as account blocks.
package convert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/qif/internal/categorize"
	"github.com/cleared-dev/qif/internal/importer"
	"github.com/cleared-dev/qif/internal/model"
	"github.com/cleared-dev/qif/qif"
)

// Options tune how bank rows become transactions.
type Options struct {
	ClearedStatus string
}

// Service converts bank transactions for one project.
type Service struct {
	categorizer *categorize.Categorizer
	opts        Options
	logger      *slog.Logger
}

// NewService creates a Service. A nil logger uses slog.Default().
func NewService(c *categorize.Categorizer, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{categorizer: c, opts: opts, logger: logger}
}

// Transactions converts bank rows into unsplit QIF transactions on acct,
// keeping their order.
func (s *Service) Transactions(acct *qif.Account, bank []model.BankTransaction) ([]*qif.Transaction, error) {
	txns := make([]*qif.Transaction, 0, len(bank))
	uncategorized := 0
	for i, bt := range bank {
		amount, err := qif.AmountFromDecimal(bt.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %d (%s): %w", i+1, bt.Description, err)
		}

		res := s.categorizer.Categorize(bt.Description)
		if !res.Matched {
			uncategorized++
			s.logger.Debug("no rule matched", "description", bt.Description, "date", bt.Date.Format("2006-01-02"))
		}

		t, err := qif.NewTransaction(acct).
			WithDate(bt.Date).
			WithPayee(res.Payee).
			WithMemo(bt.MemoOrCheck()).
			WithCategory(res.Category).
			WithClearedStatus(s.opts.ClearedStatus).
			WithAmount(amount).
			Build()
		if err != nil {
			return nil, fmt.Errorf("transaction %d (%s): %w", i+1, bt.Description, err)
		}
		txns = append(txns, t)
	}

	s.logger.Info("converted bank transactions",
		"account", acct.Name(),
		"count", len(txns),
		"uncategorized", uncategorized)
	return txns, nil
}

// ImportDir parses every file in dir that p reads, concurrently, and converts
// the rows. The result is ordered by date; rows on the same date keep file
// order. The files read are returned so the caller can mark them processed
// after writing.
func (s *Service) ImportDir(dir string, p importer.Parser, acct *qif.Account) ([]*qif.Transaction, []importer.FileInfo, error) {
	files, err := importer.Scan(dir, importer.Extensions(p)...)
	if err != nil {
		return nil, nil, err
	}

	parsed := make([][]model.BankTransaction, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range files {
		g.Go(func() error {
			bank, err := importer.ParseFile(p, f.Path)
			if err != nil {
				return err
			}
			parsed[i] = bank
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var all []*qif.Transaction
	for i, f := range files {
		s.logger.Debug("parsed import file", "file", f.Name, "rows", len(parsed[i]))

		txns, err := s.Transactions(acct, parsed[i])
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		all = append(all, txns...)
	}

	slices.SortStableFunc(all, func(a, b *qif.Transaction) int {
		return a.Date().Compare(b.Date())
	})
	return all, files, nil
}

// Write writes acct's header followed by txns to w.
func Write(w io.Writer, acct *qif.Account, txns []*qif.Transaction) error {
	qw := qif.NewWriter(w)
	if err := qw.WriteAccountBlock(acct, txns); err != nil {
		return err
	}
	return qw.Flush()
}

// WriteFile writes an account block to path, replacing any existing file.
func WriteFile(path string, acct *qif.Account, txns []*qif.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, acct, txns); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
