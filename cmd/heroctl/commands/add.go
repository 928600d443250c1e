package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a hero",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return fmt.Errorf("name is required")
			}

			ctx, cancel := requestContext(cmd)
			defer cancel()

			created, err := heroes.Create(ctx, name)
			if err != nil {
				return err
			}

			printHero(cmd.OutOrStdout(), created)
			return nil
		},
	}
	return cmd
}
