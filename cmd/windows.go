package cmd

import (
	"fmt"

	windowsrender "github.com/bnema/desktop-switcher/internal/adapters/render/windows"
	"github.com/spf13/cobra"
)

func newWindowsCmd(c *cli) *cobra.Command {
	var (
		desktop int
		format  string
	)

	cmd := &cobra.Command{
		Use:   "windows",
		Short: "List windows known to the window manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := windowsrender.ParseFormat(format)
			if err != nil {
				return err
			}

			var filter *int
			if cmd.Flags().Changed("desktop") {
				filter = &desktop
			}

			windows, err := c.app.service.Windows(cmd.Context(), filter)
			if err != nil {
				return err
			}

			rendered, err := c.app.renderWindows(windows, outputFormat)
			if err != nil {
				return fmt.Errorf("render windows: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&desktop, "desktop", 0, "only show windows on this desktop")
	cmd.Flags().StringVar(&format, "format", string(windowsrender.FormatTable), "output format: "+windowsrender.FormatNames())

	return cmd
}
