package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lukeandrew/subsurface/pkg/divelog/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "subsurface-git <location>",
		Short: "Load a dive log from a git repository",
		Long: `Subsurface-git reconstructs trips and dives from a dive log stored in a
git repository, where the hierarchy and all metadata are encoded in the
directory and file names of the branch tree.

The location string names the repository and, optionally, the branch:

  subsurface-git "git /home/user/dives"          # HEAD
  subsurface-git "git /home/user/dives:logbook"  # branch 'logbook'
  subsurface-git -o json "git ~/dives"           # machine readable output
  subsurface-git --no-cache "git ~/dives"        # force a fresh walk`,
		Args: cobra.ExactArgs(1),
		RunE: runLoad,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/subsurface/config.yaml)")
	rootCmd.PersistentFlags().StringP("branch", "b", "", "branch to load when the location names none")
	rootCmd.PersistentFlags().StringP("format", "o", "", "output format (pretty, plain, tsv, csv, json, yaml)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "bypass the load cache, walk the tree")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("branch", rootCmd.PersistentFlags().Lookup("branch"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("no_cache", rootCmd.PersistentFlags().Lookup("no-cache"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		// Add config paths in order of precedence
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "subsurface"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "subsurface"))
		}
	}

	viper.SetEnvPrefix("SUBSURFACE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
