package main

import (
	"github.com/jonathan/wellness-engine/internal/observability"
	"github.com/jonathan/wellness-engine/internal/occupation"
	"github.com/spf13/cobra"
)

var occupationsJSON bool

var occupationsCmd = &cobra.Command{
	Use:   "occupations",
	Short: "List the known occupation profiles",
	RunE:  runOccupations,
}

func init() {
	occupationsCmd.Flags().BoolVar(&occupationsJSON, "json", false, "Print profiles as JSON")
	rootCmd.AddCommand(occupationsCmd)
}

func runOccupations(cmd *cobra.Command, _ []string) error {
	table := occupation.Default()
	names := table.Names()
	profiles := make([]occupation.Profile, 0, len(names))
	for _, name := range names {
		profiles = append(profiles, table.Lookup(name))
	}

	if occupationsJSON {
		return writeJSONOutput("", cmd.OutOrStdout(), profiles)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintOccupations(profiles)
	return nil
}
