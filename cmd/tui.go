// ABOUTME: Interactive TUI command for facerec CLI
// ABOUTME: Logs to debug.log while the alternate screen is active

package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/markalston/facerec-auth/internal/logger"
	"github.com/markalston/facerec-auth/internal/tui"
	"github.com/markalston/facerec-auth/internal/tui/debuglog"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive authentication screen",
	Long: `Type employee IDs and press enter to simulate authentications. Requests
run in the background and the panel shows the verdict that arrived last.
Errors are written to debug.log in FACEREC_CONFIG_DIR.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		w, err := debuglog.Open(getConfigDir())
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer w.Close()

		l := logger.Init(w, getLogLevel(), getLogFormat())
		return tui.Run(ctx, newClient(), l)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
