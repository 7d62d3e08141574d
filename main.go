package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/forge-mcp/forgeconf/cli"
	"github.com/forge-mcp/forgeconf/cli/helpers"
	"github.com/forge-mcp/forgeconf/engine/resolver"
)

func main() {
	cmd := cli.RootCmd()
	if err := cmd.Execute(); err != nil {
		var exitErr *helpers.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitErr.Code)
		}
		if errors.Is(err, resolver.ErrDocumentNotFound) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, "Create a config.yaml at the project root or point --config at one.")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
