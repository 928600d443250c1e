package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/totegamma/tourofheroes/core"
)

// topHeroes picks positions 2 to 5 of the roster
func topHeroes(all []core.Hero) []core.Hero {
	if len(all) <= 1 {
		return []core.Hero{}
	}
	end := 5
	if len(all) < end {
		end = len(all)
	}
	return all[1:end]
}

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the top heroes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()

			all, err := heroes.GetHeroes(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Top Heroes")
			for _, hero := range topHeroes(all) {
				printHero(cmd.OutOrStdout(), hero)
			}
			return nil
		},
	}
	return cmd
}
