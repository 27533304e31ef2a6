package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/qif/qif"
)

func newAccountsCommand(gf *globalFlags) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Print the !Account header of every configured account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject(cmd, gf)
			if err != nil {
				return err
			}

			list := p.accounts.All()
			if typeName != "" {
				typ, err := qif.ParseAccountType(typeName)
				if err != nil {
					return fmt.Errorf("--type: %w", err)
				}
				list = p.accounts.ByType(typ)
			}

			w := qif.NewWriter(cmd.OutOrStdout())
			for _, a := range list {
				if err := w.WriteAccount(a); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "", "only accounts of this type (Bank, Cash, CreditCard, Investment, AssetAccount, LiabilityAccount)")

	return cmd
}
