// ABOUTME: Simulate command for facerec CLI
// ABOUTME: Fires several authentications at once into one shared result panel

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/markalston/facerec-auth/internal/authsim"
	"github.com/markalston/facerec-auth/internal/render"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var concurrency int

var simulateCmd = &cobra.Command{
	Use:   "simulate <employee-id> [employee-id...]",
	Short: "Fire concurrent authentications and show the last verdict",
	Long: `Start one simulated authentication per employee ID without waiting
between them. All verdicts render into the same panel, so the panel ends up
showing whichever response arrived last.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSimulate(ctx, os.Stdout, args)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntVar(&concurrency, "concurrency", -1, "Max in-flight requests, 0 for unlimited (overrides FACEREC_CONCURRENCY)")
}

// simulateSummary is the JSON form of a simulate run
type simulateSummary struct {
	Requested int    `json:"requested"`
	Failed    int    `json:"failed"`
	Panel     string `json:"panel"`
}

// runSimulate executes the batch and returns exit code
func runSimulate(ctx context.Context, w io.Writer, employeeIDs []string) int {
	panel := render.NewPanel("")
	sim := authsim.New(newClient(), render.HTML{Target: panel})

	var g errgroup.Group
	if limit := getConcurrency(); limit > 0 {
		g.SetLimit(limit)
	}

	var failed atomic.Int32
	for _, id := range employeeIDs {
		id := id
		g.Go(func() error {
			if _, err := sim.SimulateAuthentication(ctx, id).Wait(ctx); err != nil {
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	summary := simulateSummary{
		Requested: len(employeeIDs),
		Failed:    int(failed.Load()),
		Panel:     panel.Content(),
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprint(w, summary.Panel)
	}

	if summary.Failed == summary.Requested {
		return 2
	}
	return 0
}

func getConcurrency() int {
	if concurrency >= 0 {
		return concurrency
	}
	if cfg != nil {
		return cfg.Concurrency
	}
	return 0
}
