package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	repoPath string
	logLevel string
)

// Color definitions shared by the commands.
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.FgHiBlack)
)

var rootCmd = &cobra.Command{
	Use:   "stacksync",
	Short: "stacksync keeps a jj bookmark stack in sync with its GitHub pull request chain.",
	Long: `stacksync reconciles a linear stack of Jujutsu bookmarks with the
corresponding chain of GitHub pull requests: it pushes the stack, creates
missing pull requests, points each one at the previous bookmark, and keeps a
marker-delimited overview section in every pull request body up to date.

The jj and gh command-line tools must be installed and authenticated.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&repoPath, "repo", "R", "", "Path to the repository (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	if err := viper.BindPFlag("REPO_PATH", rootCmd.PersistentFlags().Lookup("repo")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("STACKSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
