package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/qif/internal/accounts"
	"github.com/cleared-dev/qif/internal/config"
	"github.com/cleared-dev/qif/internal/convert"
	"github.com/cleared-dev/qif/internal/ledger"
	"github.com/cleared-dev/qif/internal/logging"
	"github.com/cleared-dev/qif/qif"
)

// project is a loaded project directory.
type project struct {
	dir      string
	cfg      *config.Config
	accounts *accounts.Service
	logger   *slog.Logger
}

func loadProject(cmd *cobra.Command, gf *globalFlags) (*project, error) {
	dir, err := filepath.Abs(gf.dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, err
	}

	level, format := cfg.Logging.Level, cfg.Logging.Format
	if gf.logLevel != "" {
		level = gf.logLevel
	}
	if gf.logFormat != "" {
		format = gf.logFormat
	}
	logger, err := logging.Setup(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return nil, err
	}

	accts, err := accounts.Load(dir)
	if err != nil {
		return nil, err
	}

	return &project{dir: dir, cfg: cfg, accounts: accts, logger: logger}, nil
}

// account resolves name, falling back to the configured default account.
func (p *project) account(name string) (*qif.Account, error) {
	if name == "" {
		name = p.cfg.DefaultAccount
	}
	if name == "" {
		return nil, fmt.Errorf("no account given and no default_account in %s", config.FileName)
	}
	acct, ok := p.accounts.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown account %q", name)
	}
	return acct, nil
}

// path resolves a project-relative path.
func (p *project) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.dir, name)
}

// writeQIF writes to out, or to the command's stdout when out is "-".
func (p *project) writeQIF(cmd *cobra.Command, out string, acct *qif.Account, txns []*qif.Transaction) error {
	if out == "-" {
		return convert.Write(cmd.OutOrStdout(), acct, txns)
	}
	path := p.path(out)
	if err := convert.WriteFile(path, acct, txns); err != nil {
		return err
	}
	p.logger.Info("wrote QIF", "path", path, "account", acct.Name(), "transactions", len(txns))
	return nil
}

// writeLedger writes txns as split-ledger rows to out, or to stdout for "-".
func (p *project) writeLedger(cmd *cobra.Command, out string, txns []*qif.Transaction) error {
	rows := ledger.FromTransactions(txns)
	if out == "-" {
		return ledger.WriteRows(cmd.OutOrStdout(), rows)
	}
	path := p.path(out)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := ledger.WriteRows(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	p.logger.Info("wrote ledger", "path", path, "rows", len(rows))
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}
