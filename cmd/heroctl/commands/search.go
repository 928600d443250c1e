package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/totegamma/tourofheroes/core"
	"github.com/totegamma/tourofheroes/x/search"
)

func searchCmd() *cobra.Command {
	var quiet time.Duration

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search heroes as you type, one term per line",
		Long: `Reads search terms from stdin, one per line. Terms typed in quick succession
are collapsed, and only results for the latest term are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			coordinator := search.NewCoordinator(heroes, search.WithQuietPeriod(quiet))
			batches := coordinator.Subscribe(ctx)

			lines := make(chan string)
			go func() {
				defer close(lines)
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					select {
					case lines <- scanner.Text():
					case <-ctx.Done():
						return
					}
				}
			}()

			out := cmd.OutOrStdout()

			var last string
			settled := true
			var deadline <-chan time.Time

			for {
				select {
				case line, ok := <-lines:
					if !ok {
						if settled {
							return nil
						}
						lines = nil
						deadline = time.After(quiet + requestTimeout)
						continue
					}
					last = line
					settled = false
					coordinator.Submit(line)

				case batch, ok := <-batches:
					if !ok {
						return ctx.Err()
					}
					printBatch(out, batch)
					if batch.Term == last {
						settled = true
						if lines == nil {
							return nil
						}
					}

				case <-deadline:
					return fmt.Errorf("timed out waiting for results of %q", last)
				}
			}
		},
	}

	cmd.Flags().DurationVar(&quiet, "quiet-period", core.DefaultQuietPeriod, "how long input must stay quiet before searching")
	return cmd
}

func printBatch(w io.Writer, batch search.Batch) {
	fmt.Fprintf(w, "search %q: %d found\n", batch.Term, len(batch.Heroes))
	for _, hero := range batch.Heroes {
		printHero(w, hero)
	}
}
