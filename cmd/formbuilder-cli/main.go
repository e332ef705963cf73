package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// Config holds the application configuration
type Config struct {
	Debug bool

	Renderer      string
	Output        string
	Token         string
	Routes        map[string]string
	Sets          []string
	Stylesheet    string
	DefaultStyles bool
	Engine        string
	SubmitFormat  string
}

func main() {
	ctx := context.Background()
	if err := fang.Execute(ctx, newRootCmd(),
		fang.WithVersion(version),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "formbuilder-cli",
		Short: "Render and lint YAML form definitions",
		Long: `formbuilder-cli renders forms described in YAML through any of the
built-in renderers and checks definition files for mistakes.`,
		Example: `  # Render a definition as bare HTML
  formbuilder-cli render article.yaml

  # Render with the styled template and a route table
  formbuilder-cli render -r vanilla --route search=/search search.yaml

  # Fill the form in the terminal and print the request body
  formbuilder-cli render -r tui article.yaml

  # Lint every definition under a directory
  formbuilder-cli lint ./forms`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogging(cmd.ErrOrStderr(), cfg.Debug)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(renderCmd(&cfg))
	rootCmd.AddCommand(lintCmd())

	return rootCmd
}

func configureLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
