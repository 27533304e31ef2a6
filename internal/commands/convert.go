package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/qif/internal/categorize"
	"github.com/cleared-dev/qif/internal/convert"
	"github.com/cleared-dev/qif/internal/importer"
	"github.com/cleared-dev/qif/qif"
)

func newConvertCommand(gf *globalFlags) *cobra.Command {
	var accountName, format, out, ledgerOut string

	cmd := &cobra.Command{
		Use:   "convert [file.csv...]",
		Short: "Convert bank CSV exports to a QIF account block",
		Long: "Convert bank CSV exports to a QIF account block.\n\n" +
			"With no files, every CSV in the configured import directory is converted\n" +
			"and, if import.mark_processed is set, moved to its processed/ subdirectory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, gf)
			if err != nil {
				return err
			}
			return runConvert(cmd, p, args, accountName, format, out, ledgerOut)
		},
	}

	cmd.Flags().StringVarP(&accountName, "account", "a", "", "account name (default: default_account from qif.yaml)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: chase, generic or ofx (default: import.format from qif.yaml)")
	cmd.Flags().StringVarP(&out, "out", "o", "", `output file, "-" for stdout (default: output.path from qif.yaml)`)
	cmd.Flags().StringVar(&ledgerOut, "ledger", "", `write an editable split-ledger CSV here instead of QIF, "-" for stdout`)

	return cmd
}

func runConvert(cmd *cobra.Command, p *project, files []string, accountName, format, out, ledgerOut string) error {
	acct, err := p.account(accountName)
	if err != nil {
		return err
	}

	if format == "" {
		format = p.cfg.Import.Format
	}
	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown format %q (known: %v)", format, importer.DefaultRegistry().Formats())
	}

	if out == "" {
		out = p.cfg.Output.Path
	}

	categorizer, err := categorize.New(p.cfg.Rules)
	if err != nil {
		return err
	}
	svc := convert.NewService(categorizer, convert.Options{ClearedStatus: p.cfg.Output.ClearedStatus}, p.logger)

	var txns []*qif.Transaction
	var processed []importer.FileInfo
	if len(files) == 0 {
		txns, processed, err = svc.ImportDir(p.path(p.cfg.Import.Dir), parser, acct)
		if err != nil {
			return err
		}
		if len(processed) == 0 {
			p.logger.Warn("no CSV files to import", "dir", p.path(p.cfg.Import.Dir))
		}
	} else {
		for _, f := range files {
			bank, err := importer.ParseFile(parser, p.path(f))
			if err != nil {
				return err
			}
			converted, err := svc.Transactions(acct, bank)
			if err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
			txns = append(txns, converted...)
		}
	}

	if ledgerOut != "" {
		err = p.writeLedger(cmd, ledgerOut, txns)
	} else {
		err = p.writeQIF(cmd, out, acct, txns)
	}
	if err != nil {
		return err
	}

	if p.cfg.Import.MarkProcessed {
		for _, f := range processed {
			if err := importer.MarkProcessed(filepath.Dir(f.Path), f.Name); err != nil {
				return err
			}
		}
	}
	return nil
}
