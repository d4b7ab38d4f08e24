// Package commands implements the CLI commands for freshness.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/freshness/internal/app"
	"go.trai.ch/freshness/internal/build"
	"go.trai.ch/freshness/internal/core/domain"
)

// CLI represents the command line interface for freshness.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Check(ctx context.Context, opts app.CheckOptions) error
	Health(ctx context.Context, opts app.HealthOptions) error
	Clean(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "freshness",
		Short:         "Check whether packages in a nix flake are behind their upstream inputs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newHealthCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addCheckFlags registers the flags shared by check and health.
func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("flake", "f", domain.DefaultFlakeFile, "Path to flake.nix")
	cmd.Flags().StringP("pkgs", "p", "", "Path to the package configuration file")
	cmd.Flags().BoolP("updates-only", "u", false, "Only show packages with updates available")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the version cache")
	cmd.Flags().Bool("json", false, "Output results as JSON")
	cmd.Flags().IntP("workers", "w", 0, "Number of concurrent version lookups")
	cmd.Flags().String("color", "auto", "Colour output: auto, always, or never")
}

func checkOptions(cmd *cobra.Command) app.CheckOptions {
	flake, _ := cmd.Flags().GetString("flake")
	pkgs, _ := cmd.Flags().GetString("pkgs")
	updatesOnly, _ := cmd.Flags().GetBool("updates-only")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	workers, _ := cmd.Flags().GetInt("workers")
	color, _ := cmd.Flags().GetString("color")

	return app.CheckOptions{
		FlakePath:    flake,
		PackagesPath: pkgs,
		UpdatesOnly:  updatesOnly,
		NoCache:      noCache,
		JSON:         jsonOutput,
		Workers:      workers,
		Color:        color,
	}
}
