package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ib-77/rpipe/internal/logging"
	"github.com/ib-77/rpipe/pkg/pipe/manifest"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "rpipe",
	Short:        "rpipe renders pipelines of composable units",
	Long:         `rpipe compiles a YAML manifest of pipelines into pages and renders or serves them.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("manifest", "m", "pages.yaml", "Path to the pipeline manifest")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail when a pipe is rendered outside any pipeline")
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

func loadSite(cmd *cobra.Command) (*manifest.Site, error) {
	path, _ := cmd.Flags().GetString("manifest")
	doc, err := manifest.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return manifest.NewRegistry().Compile(doc)
}
