package commands

import (
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every hero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()

			all, err := heroes.GetHeroes(ctx)
			if err != nil {
				return err
			}
			for _, hero := range all {
				printHero(cmd.OutOrStdout(), hero)
			}
			return nil
		},
	}
	return cmd
}
