package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lessco/internal/app"
)

const defaultAddr = "127.0.0.1:8080"

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site root, running the render hook on every HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			tc, err := templateContext(cmd)
			if err != nil {
				return err
			}
			addr, _ := cmd.Flags().GetString("addr")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Serve(cmd.Context(), cfg, app.ServeOptions{
				Addr:    addr,
				Context: tc,
				Watch:   watch,
			})
		},
	}
	addTemplateFlags(cmd, true)
	cmd.Flags().String("addr", defaultAddr, "Address to listen on")
	cmd.Flags().BoolP("watch", "w", false, "Recompile the template in the background")
	return cmd
}
