// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the notefix CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notefix/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg and logger are populated before any subcommand runs.
var (
	cfg    types.Config
	logger = zerolog.Nop()
)

// rootCmd is the base command for the notefix CLI.
var rootCmd = &cobra.Command{
	Use:   "notefix",
	Short: "Repair and reorganize JSON study notes containing LaTeX",
	Long: `notefix repairs and reorganizes JSON study-note documents whose text
fields carry LaTeX. Each maintenance task is a subcommand: normalize fixes
backslash runs, sort orders notes by id, escape repairs raw LaTeX that broke
the JSON, syllabus extracts a chapter outline, and merge folds notes into it.

Without file arguments each command works on the default documents under
data_dir, as named in the configuration.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = loadConfig()

		verbose, _ := cmd.Flags().GetBool("verbose")
		logFile, _ := cmd.Flags().GetString("log-file")
		l, err := newLogger(cfg.LogLevel, verbose, logFile)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug().Str("data_dir", cfg.DataDir).Msg("configuration loaded")
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./notefix.yaml or ~/.config/notefix/notefix.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding the default documents (default \"data\")")
	rootCmd.PersistentFlags().String("log-level", "", "diagnostic level: debug, info, warn, error (default \"info\")")
	rootCmd.PersistentFlags().String("log-file", "", "append diagnostics to this file instead of stderr")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "shorthand for --log-level debug")
	rootCmd.PersistentFlags().Bool("dry-run", false, "report what would change without writing")

	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	setDefaults()
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("notefix")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "notefix"))
		}
	}

	viper.SetEnvPrefix("NOTEFIX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
