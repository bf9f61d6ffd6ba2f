// Package cmd defines the command-line interface for repochurn.
package cmd

import (
	"github.com/huangsam/repochurn/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of repositories mined at once (max 8)")
	rootCmd.PersistentFlags().String("credit", "full", "Credit for co-authored commits: full or split")
	rootCmd.PersistentFlags().String("git-timeout", contract.DefaultGitTimeout.String(), "Timeout for each git command (0 = none)")
	rootCmd.PersistentFlags().String("repo-timeout", "", "Timeout for mining one repository (empty = none)")
	rootCmd.PersistentFlags().Float64("clone-rate", 0, "Maximum clones started per second (0 = unlimited)")
	rootCmd.PersistentFlags().String("token", "", "Token used in https clone URLs (prefer REPOCHURN_TOKEN)")
	rootCmd.PersistentFlags().String("tmp-dir", "", "Parent directory for temporary clones")
	rootCmd.PersistentFlags().String("git-env", "", "Extra git environment as KEY=VALUE,KEY2=VALUE2")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of statsCmd to Viper
	statsCmd.Flags().StringP("input", "i", "", "JSON file with a list of {\"url\", \"name\"} repositories")
	statsCmd.Flags().String("output", "text", "Output format: text or csv or json or parquet")
	statsCmd.Flags().String("output-file", "", "Optional path to write output to")
	statsCmd.Flags().IntP("limit", "l", contract.DefaultLimit, "Contributors shown per repository in text output")
	statsCmd.Flags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	statsCmd.Flags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	if err := viper.BindPFlags(statsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding stats flags", err)
	}
}
