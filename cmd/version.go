package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/graphd-io/graphd/internal/build"
)

// NewVersionCommand returns the command to get the graphd version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Return the graphd version",
		Long:  "Return the graphd version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}
}

func version(_ *cobra.Command, _ []string) error {
	log.Printf("graphd version %s date %s commit id %s", build.Version, build.Date, build.Commit)
	return nil
}
