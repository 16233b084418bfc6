package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lessco/internal/adapters/watcher"
	"go.trai.ch/lessco/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [templates...]",
		Short: "Recompile template stylesheets when their sources change",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			tc, err := templateContext(cmd)
			if err != nil {
				return err
			}
			window, _ := cmd.Flags().GetDuration("debounce")
			return c.app.Watch(cmd.Context(), cfg, app.WatchOptions{
				CompileOptions: app.CompileOptions{
					Client:    tc.Client,
					Templates: args,
					Variables: tc.Variables,
				},
				Window: window,
			})
		},
	}
	addTemplateFlags(cmd, false)
	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow, "Time to wait for further changes before recompiling")
	return cmd
}
