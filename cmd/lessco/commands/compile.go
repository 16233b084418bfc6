package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lessco/internal/app"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [templates...]",
		Short: "Compile template stylesheets whose sources changed",
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
			return c.app.Compile(cmd.Context(), cfg, app.CompileOptions{
				Client:    tc.Client,
				Templates: args,
				Variables: tc.Variables,
			})
		},
	}
	addTemplateFlags(cmd, false)
	return cmd
}
