package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bnema/desktop-switcher/internal/application"
	"github.com/spf13/cobra"
)

func Execute() error {
	return execute(context.Background(), defaultDependencies(), os.Args[1:], os.Stdout, os.Stderr)
}

// execute runs one invocation and reports a failure exactly once.
func execute(ctx context.Context, deps dependencies, args []string, stdout, stderr io.Writer) error {
	c := newCLI(deps)
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		c.report(ctx, stderr, err)
	}

	return err
}

func newRootCmd(c *cli) *cobra.Command {
	var desktop string

	rootCmd := &cobra.Command{
		Use:   "switcher -d NAME",
		Short: "Switch to a virtual desktop and bring up its program",
		Long: "switcher moves to the virtual desktop configured for a profile and makes sure its program " +
			"has a window there, launching it when needed. Profiles live in ~/.config/switcher.conf.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.wire(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.service.SwitchTo(cmd.Context(), desktop)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), summarize(result))
			return err
		},
	}

	rootCmd.Flags().StringVarP(&desktop, "desktop", "d", "", "name of the desktop profile to switch to")
	_ = rootCmd.MarkFlagRequired("desktop")

	rootCmd.PersistentFlags().String("config", "", "profiles file (default ~/.config/switcher.conf)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	c.bindFlags(rootCmd)

	rootCmd.AddCommand(
		newVersionCmd(),
		newWindowsCmd(c),
		newProfilesCmd(c),
	)

	return rootCmd
}

func summarize(result application.SwitchResult) string {
	var parts []string
	if result.Launched {
		parts = append(parts, fmt.Sprintf("launched pid %d", result.PID))
	} else {
		parts = append(parts, "already running")
	}
	parts = append(parts, "window "+result.WindowID)
	if len(result.Closed) > 0 {
		parts = append(parts, fmt.Sprintf("closed %d", len(result.Closed)))
	}
	if len(result.CloseFailures) > 0 {
		parts = append(parts, fmt.Sprintf("failed to close %d", len(result.CloseFailures)))
	}
	if result.Fullscreened {
		parts = append(parts, "fullscreen")
	}
	if result.Activated {
		parts = append(parts, "activated")
	}

	return fmt.Sprintf("desktop %d (%s): %s", result.Desktop, result.Profile, strings.Join(parts, ", "))
}
