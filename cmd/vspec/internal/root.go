package internal

import (
	"context"
	"log"

	"github.com/goplus/vspec/internal/ctxlog"
	"github.com/goplus/vspec/internal/env"
	"github.com/spf13/cobra"
)

var logLevel string
var logFormat string

var rootCmd = &cobra.Command{
	Use:   "vspec",
	Short: "vspec turns variant-aware formulas into build-system arguments",
	Long: `vspec reads a formula declaring build variants and conditional dependencies,
resolves the dependencies selected by a variant assignment and prints the
arguments to pass to CMake or Autotools.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := ctxlog.New(logLevel, logFormat, cmd.ErrOrStderr())
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", env.Get(env.LogLevel, "warn"), "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", env.Get(env.LogFormat, "text"), "Log format (text, json)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		log.Fatal(err)
	}
}
