package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	verbose bool
	server  string
)

// cliConfig is the optional YAML config file (~/.pdfedit.yaml).
type cliConfig struct {
	Server string `yaml:"server"`
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pdfedit",
	Short: "A client for the PDF annotation service",
	Long: `pdfedit manages PDF documents on the annotation backend.
It uploads documents, submits annotation batches (text, images, line
drawings) and downloads rendered page previews.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		if server == "" {
			server = serverFromConfig()
		}
		if server == "" {
			server = os.Getenv("PDFEDIT_SERVER")
		}
	},
}

// serverFromConfig reads the base URL from ~/.pdfedit.yaml, if present.
func serverFromConfig() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(home, ".pdfedit.yaml"))
	if err != nil {
		return ""
	}

	var cfg cliConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Warn("ignoring malformed config file", "error", err)
		return ""
	}
	return cfg.Server
}

func requireServer() string {
	if server == "" {
		fmt.Fprintln(os.Stderr, "Error: no server configured (use --server, PDFEDIT_SERVER or ~/.pdfedit.yaml)")
		os.Exit(1)
	}
	return server
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&server, "server", "s", "", "Base URL of the annotation backend")
}
