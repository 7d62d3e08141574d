package cli

import (
	"github.com/spf13/cobra"

	"github.com/forge-mcp/forgeconf/cli/cmd/check"
	"github.com/forge-mcp/forgeconf/cli/cmd/export"
	"github.com/forge-mcp/forgeconf/cli/cmd/networks"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "forgeconf",
		Short: "Resolve per-environment deployment configuration",
		Long: `forgeconf merges config.yaml with the process environment, applies
environment-specific defaults and placeholder substitution, and emits the
result as shell exports, compact JSON, or a colored validation report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to the configuration document (default config.yaml)")
	root.PersistentFlags().String("env-file", "", "Optional .env file; fills only variables not already set")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	root.PersistentFlags().String("color", "auto", "Colored output (auto, on, off)")

	root.AddCommand(
		check.NewCheckCommand(),
		export.NewExportCommand(),
		networks.NewNetworksCommand(),
	)

	return root
}
