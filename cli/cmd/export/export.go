package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forge-mcp/forgeconf/cli/cmd"
	"github.com/forge-mcp/forgeconf/engine/resolver"
	"github.com/forge-mcp/forgeconf/pkg/logger"
)

// NewExportCommand creates the export subcommand. Its output is meant for
// eval in shell scripts, so nothing but export lines goes to stdout.
func NewExportCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "export [environment]",
		Short: "Print service configuration as shell export lines",
		Long: `Export resolves the service configuration for an environment and
prints it as 'export KEY="value"' lines: the eight canonical service
host/port keys, the derived service URLs, and any free-form settings the
document declares (uppercased).`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}
	return c
}

func runExport(cobraCmd *cobra.Command, args []string) error {
	ctx, rt, err := cmd.Setup(cobraCmd, args)
	if err != nil {
		return err
	}
	log := logger.FromContext(ctx)
	out := cobraCmd.OutOrStdout()

	services := resolver.ResolveServices(rt.Env, rt.Section)
	urls := resolver.ServiceURLs(services)

	for _, key := range resolver.CanonicalServiceKeys {
		fmt.Fprintf(out, "export %s=%q\n", key, services[key])
	}
	for _, key := range resolver.ServiceURLKeys {
		fmt.Fprintf(out, "export %s=%q\n", key, urls[key])
	}
	for _, key := range sortedSettingKeys(rt.Section.Settings) {
		fmt.Fprintf(out, "export %s=%q\n", strings.ToUpper(key), rt.Section.Settings[key])
	}

	log.Debug("exported service configuration",
		"environment", rt.Env,
		"settings", len(rt.Section.Settings),
	)
	return nil
}

func sortedSettingKeys(settings map[string]string) []string {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
