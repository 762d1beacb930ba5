package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"packstock/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		settingsPath = flag.String(
			"settings",
			"settings.yaml",
			"Path to optional YAML settings file",
		)
		seed       = flag.String("seed", "", "Comma-separated item codes to seed the ledger (overrides settings)")
		ingest     = flag.String("ingest", "", "Ingest these comma-separated codes and exit")
		order      = flag.String("order", "", "Prepare this comma-separated order and exit")
		showStock  = flag.Bool("stock", false, "Print the stock table and exit")
		showAlerts = flag.Bool("alerts", false, "Print the alert journal and exit")
		verbose    = flag.Bool("verbose", false, "Enable verbose output")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		SettingsPath: *settingsPath,
		Seed:         *seed,
		Ingest:       *ingest,
		Order:        *order,
		ShowStock:    *showStock,
		ShowAlerts:   *showAlerts,
		Verbose:      *verbose,
	}

	// Create and execute command; without scripted flags this runs the
	// interactive menu.
	cmd := commands.NewSessionCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
