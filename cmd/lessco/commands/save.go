package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lessco/internal/core/domain"
)

func (c *CLI) newSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Run the save hook for a template style",
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

			eventContext, _ := cmd.Flags().GetString("context")
			styleID, _ := cmd.Flags().GetInt("style-id")
			params, _ := cmd.Flags().GetStringToString("param")

			return c.app.Save(cmd.Context(), cfg, domain.SaveEvent{
				Context:  eventContext,
				StyleID:  styleID,
				Client:   tc.Client,
				Template: tc.Template,
				Params:   params,
			})
		},
	}
	cmd.Flags().String("client", string(domain.ClientSite), "Client the template belongs to: site or admin")
	cmd.Flags().StringP("template", "t", "", "Template name")
	_ = cmd.MarkFlagRequired("template")
	cmd.Flags().String("context", domain.StyleSaveContext, "Context of the save event")
	cmd.Flags().Int("style-id", 0, "Identifier of the saved template style")
	_ = cmd.MarkFlagRequired("style-id")
	cmd.Flags().StringToString("param", nil, "Template style parameter (name=value)")
	return cmd
}
