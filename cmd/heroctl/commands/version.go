package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/totegamma/tourofheroes/x/util"
)

// Version is stamped at build time through ldflags
var Version = "unknown"

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the heroctl version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "heroctl %s\n", util.GetFullVersion(Version))
			return nil
		},
	}
	return cmd
}
