// ABOUTME: Auth command for facerec CLI
// ABOUTME: Simulates one authentication and prints the rendered verdict

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/markalston/facerec-auth/internal/authsim"
	"github.com/markalston/facerec-auth/internal/client"
	"github.com/markalston/facerec-auth/internal/render"
	"github.com/markalston/facerec-auth/internal/tui/resultview"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

// Output formats for auth
const (
	formatHTML = "html"
	formatText = "text"
)

var authFormat string

var authCmd = &cobra.Command{
	Use:   "auth [employee-id]",
	Short: "Simulate a facial recognition authentication",
	Long: `Send a simulated authentication for an employee and print the verdict.

Without an employee ID an interactive prompt asks for one.

Exit codes:
  0  verdict SUCCESS
  1  any other verdict, including JSON error replies such as an unknown employee
  2  the service could not be reached or answered with a non-JSON body`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		var employeeID string
		if len(args) == 1 {
			employeeID = args[0]
		} else {
			id, err := promptEmployeeID()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(2)
			}
			employeeID = id
		}

		exitCode := runAuth(ctx, os.Stdout, employeeID)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.Flags().StringVar(&authFormat, "format", formatHTML, "Output format: html or text")
}

// runAuth executes one simulation and returns exit code.
// Transport failures are logged by the simulator and print nothing.
func runAuth(ctx context.Context, w io.Writer, employeeID string) int {
	if authFormat != formatHTML && authFormat != formatText {
		fmt.Fprintf(w, "Error: unknown format %q (want html or text)\n", authFormat)
		return 2
	}

	panel := render.NewPanel("")
	sim := authsim.New(newClient(), render.HTML{Target: panel})

	result, err := sim.SimulateAuthentication(ctx, employeeID).Wait(ctx)
	if err != nil {
		return 2
	}

	switch {
	case IsJSONOutput():
		fmt.Fprintln(w, formatAuthJSON(result))
	case authFormat == formatText:
		fmt.Fprintln(w, resultview.Render(*result, 0))
	default:
		fmt.Fprint(w, panel.Content())
	}

	if !result.Succeeded() {
		return 1
	}
	return 0
}

// formatAuthJSON prints the reply body as received, indented
func formatAuthJSON(result *client.AuthResult) string {
	raw := result.Raw()
	if len(raw) == 0 {
		return "{}"
	}
	return strings.TrimRight(string(pretty.Pretty(raw)), "\n")
}

// promptEmployeeID asks for an employee ID interactively
func promptEmployeeID() (string, error) {
	var id string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Employee ID").
				Description("Identifier sent to /simulate_auth").
				Value(&id),
		),
	).WithTheme(huh.ThemeBase())

	if err := form.Run(); err != nil {
		return "", err
	}
	return id, nil
}
