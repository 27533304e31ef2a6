package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/qif/internal/ledger"
)

func newLedgerCommand(gf *globalFlags) *cobra.Command {
	var accountName, out string
	var check bool

	cmd := &cobra.Command{
		Use:   "ledger <ledger.csv>",
		Short: "Convert a split-ledger CSV to QIF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, gf)
			if err != nil {
				return err
			}

			f, err := openInput(p.path(args[0]))
			if err != nil {
				return err
			}
			rows, err := ledger.ReadRows(f)
			f.Close()
			if err != nil {
				return err
			}

			if check {
				verrs := ledger.ValidateRows(rows)
				for _, ve := range verrs {
					fmt.Fprintln(cmd.OutOrStdout(), ve.Error())
				}
				if len(verrs) > 0 {
					return fmt.Errorf("%d validation errors", len(verrs))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d rows OK\n", len(rows))
				return nil
			}

			acct, err := p.account(accountName)
			if err != nil {
				return err
			}
			txns, err := ledger.Transactions(acct, rows)
			if err != nil {
				return err
			}
			if out == "" {
				out = p.cfg.Output.Path
			}
			if len(txns) == 0 {
				return errors.New("ledger has no transactions")
			}
			return p.writeQIF(cmd, out, acct, txns)
		},
	}

	cmd.Flags().StringVarP(&accountName, "account", "a", "", "account name (default: default_account from qif.yaml)")
	cmd.Flags().StringVarP(&out, "out", "o", "", `output file, "-" for stdout (default: output.path from qif.yaml)`)
	cmd.Flags().BoolVar(&check, "check", false, "only validate the ledger and list problems")

	return cmd
}
