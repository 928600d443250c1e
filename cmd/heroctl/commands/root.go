// Package commands holds the heroctl subcommands
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/totegamma/tourofheroes/client"
	"github.com/totegamma/tourofheroes/core"
)

var (
	apiURL  string
	verbose bool
	heroes  client.Client
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "heroctl",
		Short:        "Manage and search the heroes of the Tour of Heroes api",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			if apiURL == "" {
				return fmt.Errorf("no api configured. use --api or HEROES_API")
			}
			heroes = client.NewClient(apiURL)
			return nil
		},
	}

	defaultAPI := os.Getenv("HEROES_API")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8000"
	}

	root.PersistentFlags().StringVar(&apiURL, "api", defaultAPI, "api base URL (env HEROES_API)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		listCmd(),
		getCmd(),
		addCmd(),
		renameCmd(),
		deleteCmd(),
		dashboardCmd(),
		searchCmd(),
		versionCmd(),
	)
	return root
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid hero id %q", raw)
	}
	return uint(id), nil
}

func printHero(w io.Writer, hero core.Hero) {
	fmt.Fprintf(w, "%4d  %s\n", hero.ID, hero.Name)
}

const requestTimeout = 15 * time.Second

func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), requestTimeout)
}
