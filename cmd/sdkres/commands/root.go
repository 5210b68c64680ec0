// Package commands implements the CLI commands for sdkres.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/sdkres/internal/app"
	"go.trai.ch/sdkres/internal/build"
	"go.trai.ch/sdkres/internal/core/ports"
)

// CLI represents the command line interface for sdkres.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	jsonOutput bool
	verbose    bool
	trace      bool

	flushTraces func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	Evaluate(ctx context.Context, opts app.EvaluateOptions) (*app.Report, error)
	Resolvers(configPath string) ([]ports.SdkResolver, error)
	ConfigureLogging(json, verbose bool)
	EnableTracing(w io.Writer) (func(context.Context) error, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sdkres",
		Short:         "Resolve project SDK references through a prioritized resolver chain",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	// Registered ahead of the default version flag so -v stays with --verbose.
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to sdkres.yaml (default: ./sdkres.yaml)")
	flags.BoolVar(&c.jsonOutput, "json", false, "Emit logs and reports as JSON")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Show low-importance resolver diagnostics")
	flags.BoolVar(&c.trace, "trace", false, "Write OpenTelemetry spans as JSON to stderr")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		c.app.ConfigureLogging(c.jsonOutput, c.verbose)
		if !c.trace {
			return nil
		}
		flush, err := c.app.EnableTracing(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		c.flushTraces = flush
		return nil
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newResolversCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if c.flushTraces != nil {
		if flushErr := c.flushTraces(context.WithoutCancel(ctx)); err == nil {
			err = flushErr
		}
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
