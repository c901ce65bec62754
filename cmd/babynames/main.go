// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the babynames CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/babynames/internal/summary"
	"github.com/pdiddy/babynames/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the babynames CLI.
var rootCmd = &cobra.Command{
	Use:   "babynames [flags] file...",
	Short: "Extract and alphabetize baby name rankings from HTML",
	Long: `babynames reads one or more babyYYYY.html popularity tables and prints
the year followed by each name and its rank, sorted by name.

With --summaryfile, each result is written to <file>.summary instead of
stdout. Files are processed in order and the first failure stops the run.`,
	Version: version,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	// Arguments are valid by now; later failures are about the files.
	cmd.SilenceUsage = true

	cfg, err := summaryConfig()
	if err != nil {
		return err
	}
	res, err := summary.Run(args, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "summarized %d file(s): %d printed, %d written\n",
		res.Total(), res.Printed, res.Written)
	return nil
}

// summaryConfig reads settings from flags, config file, and environment.
func summaryConfig() (types.SummaryConfig, error) {
	var cfg types.SummaryConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.SummaryConfig{}, fmt.Errorf("reading config: %w", err)
	}
	format, err := summary.ParseFormat(string(cfg.Format))
	if err != nil {
		return types.SummaryConfig{}, err
	}
	cfg.Format = format
	return cfg, nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./babynames.yaml or ~/.config/babynames/config.yaml)")
	rootCmd.Flags().Bool("summaryfile", false, "write each result to <file>.summary instead of stdout")
	rootCmd.Flags().String("format", string(types.FormatText), "output format: text, yaml, or json")

	bindFlags()
}

// bindFlags lets viper resolve each setting from its flag, then
// BABYNAMES_* env, then the config file.
func bindFlags() {
	_ = viper.BindPFlag("summaryfile", rootCmd.Flags().Lookup("summaryfile"))
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("babynames")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "babynames"))
		}
	}

	viper.SetEnvPrefix("BABYNAMES")
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
