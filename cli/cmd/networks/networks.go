package networks

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/forge-mcp/forgeconf/cli/cmd"
	"github.com/forge-mcp/forgeconf/cli/helpers"
	"github.com/forge-mcp/forgeconf/engine/resolver"
	"github.com/forge-mcp/forgeconf/pkg/logger"
)

// NewNetworksCommand creates the networks subcommand.
func NewNetworksCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "networks [environment]",
		Short: "Resolve network RPC URLs",
		Long: `Networks resolves every declared network URL template against the
environment, injecting Alchemy credentials in production and dropping
entries that stay unresolved. A testnet entry is always present. The
default output is a human-readable listing with secrets masked; --json
prints the map as compact JSON for machine consumption.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNetworks,
	}
	c.Flags().Bool("json", false, "Print the network map as compact JSON")
	c.Flags().BoolP("verbose", "v", false, "Also report networks that were dropped, and why")
	return c
}

func runNetworks(cobraCmd *cobra.Command, args []string) error {
	ctx, rt, err := cmd.Setup(cobraCmd, args)
	if err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	asJSON, err := cobraCmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}
	verbose, err := cobraCmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}

	networks, outcomes := resolver.ResolveNetworks(rt.Env, rt.Section, rt.Snapshot.Lookup())

	if verbose {
		for _, outcome := range outcomes {
			if outcome.Status != resolver.NetworkIncluded {
				log.Warn("network dropped", "network", outcome.Name, "reason", outcome.Status.String())
			}
		}
	}

	if asJSON {
		return printJSON(cobraCmd, networks)
	}
	return printListing(cobraCmd, rt.Settings.ColorMode, networks)
}

// printJSON writes the compact map and nothing else to stdout.
func printJSON(cobraCmd *cobra.Command, networks resolver.NetworkMap) error {
	data, err := json.Marshal(networks)
	if err != nil {
		return fmt.Errorf("failed to encode network map: %w", err)
	}
	fmt.Fprintln(cobraCmd.OutOrStdout(), string(data))
	return nil
}

func printListing(cobraCmd *cobra.Command, colorMode string, networks resolver.NetworkMap) error {
	printer := helpers.NewPrinter(colorMode)
	out := cobraCmd.OutOrStdout()

	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, printer.Header("🪐 Configured networks"))
	for _, name := range names {
		fmt.Fprintln(out, printer.NetworkLine(name, networks[name]))
	}
	return nil
}
