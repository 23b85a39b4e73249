package cmd

import (
	"fmt"

	windowsrender "github.com/bnema/desktop-switcher/internal/adapters/render/windows"
	"github.com/spf13/cobra"
)

func newProfilesCmd(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List configured desktop profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := windowsrender.ParseFormat(format)
			if err != nil {
				return err
			}

			profiles, err := c.app.service.Profiles(cmd.Context())
			if err != nil {
				return err
			}

			rendered, err := c.app.renderProfiles(profiles, outputFormat)
			if err != nil {
				return fmt.Errorf("render profiles: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(windowsrender.FormatTable), "output format: "+windowsrender.FormatNames())

	return cmd
}
