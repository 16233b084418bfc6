// Package commands implements the CLI commands for lessco.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/lessco/internal/app"
	"go.trai.ch/lessco/internal/build"
	"go.trai.ch/lessco/internal/core/domain"
)

// CLI represents the command line interface for lessco.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
	out     io.Writer
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lessco",
		Short:         "Change-aware Less compilation for site templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to lessco.yaml (searched upwards from the working directory when empty)")
	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty or json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug messages")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Recompile even when the cache is valid")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		out:     os.Stdout,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		format, _ := cmd.Flags().GetString("log-format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.app.ConfigureLogging(format, verbose)
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newSaveCmd())
	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
	c.rootCmd.SetOut(w)
}

// loadConfig reads the configuration named by --config and applies --force.
func (c *CLI) loadConfig(cmd *cobra.Command) (*domain.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := c.app.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if force, _ := cmd.Flags().GetBool("force"); force {
		cfg.Force = true
	}
	return cfg, nil
}

// addTemplateFlags registers the flags selecting a client, template and its variables.
func addTemplateFlags(cmd *cobra.Command, withTemplate bool) {
	cmd.Flags().String("client", string(domain.ClientSite), "Client the template belongs to: site or admin")
	cmd.Flags().StringToString("var", nil, "Template parameter passed to the compiler as a variable (name=value)")
	if withTemplate {
		cmd.Flags().StringP("template", "t", "", "Template name")
		_ = cmd.MarkFlagRequired("template")
	}
}

// templateContext reads the flags registered by addTemplateFlags.
func templateContext(cmd *cobra.Command) (domain.TemplateContext, error) {
	raw, _ := cmd.Flags().GetString("client")
	client, err := domain.ParseClientKind(raw)
	if err != nil {
		return domain.TemplateContext{}, err
	}
	vars, _ := cmd.Flags().GetStringToString("var")
	template, _ := cmd.Flags().GetString("template")
	return domain.TemplateContext{
		Client:    client,
		Template:  template,
		Variables: vars,
	}, nil
}
