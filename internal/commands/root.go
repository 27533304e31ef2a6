package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/qif/internal/buildinfo"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	dir       string
	logLevel  string
	logFormat string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var gf globalFlags

	rootCmd := &cobra.Command{
		Use:     "qif",
		Short:   "Export bank and ledger data as QIF",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&gf.dir, "dir", ".", "project directory")
	rootCmd.PersistentFlags().StringVar(&gf.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides qif.yaml")
	rootCmd.PersistentFlags().StringVar(&gf.logFormat, "log-format", "", "log format (text, json); overrides qif.yaml")

	rootCmd.AddCommand(
		newInitCommand(&gf),
		newAccountsCommand(&gf),
		newConvertCommand(&gf),
		newLedgerCommand(&gf),
	)

	return rootCmd
}
