package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/totegamma/tourofheroes/core"
)

func renameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a hero",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			name := strings.TrimSpace(strings.Join(args[1:], " "))
			if name == "" {
				return fmt.Errorf("name is required")
			}

			ctx, cancel := requestContext(cmd)
			defer cancel()

			saved, err := heroes.Update(ctx, core.Hero{ID: id, Name: name})
			if err != nil {
				return err
			}

			printHero(cmd.OutOrStdout(), saved)
			return nil
		},
	}
	return cmd
}
