package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forge-mcp/forgeconf/engine/resolver"
	appconfig "github.com/forge-mcp/forgeconf/pkg/config"
	"github.com/forge-mcp/forgeconf/pkg/logger"
)

// Runtime bundles everything a command needs for one resolution run: the
// tool settings, the target environment, the parsed document section and
// the environment snapshot. The snapshot is taken exactly once, here.
type Runtime struct {
	Settings *appconfig.Config
	Env      resolver.Environment
	Document resolver.Document
	Section  resolver.Section
	Snapshot resolver.EnvMap
}

// Setup loads settings, configures logging, overlays the optional .env
// file, parses the environment argument and loads the document. Every
// command goes through it before touching the engine.
func Setup(cobraCmd *cobra.Command, args []string) (context.Context, *Runtime, error) {
	settings, err := loadSettings(cobraCmd)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.SetupLogger(cobraCmd)
	if err != nil {
		return nil, nil, err
	}
	ctx := logger.ContextWithLogger(cobraCmd.Context(), log)

	env, err := targetEnvironment(args)
	if err != nil {
		return nil, nil, err
	}

	snapshot, err := buildSnapshot(settings.EnvFile)
	if err != nil {
		return nil, nil, err
	}

	doc, err := resolver.LoadDocument(settings.ConfigFile)
	if err != nil {
		return nil, nil, err
	}

	log.Debug("resolution inputs ready",
		"environment", env,
		"config_file", settings.ConfigFile,
		"snapshot_size", len(snapshot),
	)

	return ctx, &Runtime{
		Settings: settings,
		Env:      env,
		Document: doc,
		Section:  doc.Section(env),
		Snapshot: snapshot,
	}, nil
}

// loadSettings resolves the tool settings from defaults, FORGECONF_* env
// vars and explicitly changed flags, in that precedence order.
func loadSettings(cobraCmd *cobra.Command) (*appconfig.Config, error) {
	service := appconfig.NewService()
	settings, err := service.Load(cobraCmd.Context(), extractCLIFlags(cobraCmd))
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// extractCLIFlags collects flags the user explicitly changed.
func extractCLIFlags(cobraCmd *cobra.Command) map[string]any {
	flags := make(map[string]any)
	setString := func(flagName, key string) {
		if cobraCmd.Flags().Changed(flagName) {
			if value, err := cobraCmd.Flags().GetString(flagName); err == nil {
				flags[key] = value
			}
		}
	}
	setString("config", "config_file")
	setString("env-file", "env_file")
	setString("log-level", "log_level")
	setString("color", "color_mode")
	if cobraCmd.Flags().Changed("log-json") {
		if value, err := cobraCmd.Flags().GetBool("log-json"); err == nil {
			flags["log_json"] = value
		}
	}
	return flags
}

// targetEnvironment parses the positional environment argument, defaulting
// to development.
func targetEnvironment(args []string) (resolver.Environment, error) {
	if len(args) == 0 {
		return resolver.Development, nil
	}
	return resolver.ParseEnvironment(args[0])
}

// buildSnapshot takes the one environment snapshot for this run. The .env
// file, when present, fills only variables the process does not already
// have.
func buildSnapshot(envFile string) (resolver.EnvMap, error) {
	processEnv := resolver.Snapshot()
	if envFile == "" {
		return processEnv, nil
	}
	fileEnv, err := resolver.ReadEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	merged, err := fileEnv.Merge(processEnv)
	if err != nil {
		return nil, fmt.Errorf("failed to merge env file with process environment: %w", err)
	}
	return merged, nil
}
