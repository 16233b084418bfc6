package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render PAGE",
		Short: "Run the render hook on an HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			tc, err := templateContext(cmd)
			if err != nil {
				return err
			}

			var out io.Writer = c.out
			if path, _ := cmd.Flags().GetString("output"); path != "" {
				f, err := os.Create(path) //nolint:gosec // output path is chosen by the user
				if err != nil {
					return zerr.With(zerr.Wrap(err, "failed to create output"), "path", path)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			return c.app.RenderFile(cmd.Context(), cfg, tc, args[0], out)
		},
	}
	addTemplateFlags(cmd, true)
	cmd.Flags().StringP("output", "o", "", "Write the rendered page to a file instead of stdout")
	return cmd
}
