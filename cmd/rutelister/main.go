// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the rutelister CLI.
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the rutelister CLI.
var rootCmd = &cobra.Command{
	Use:   "rutelister",
	Short: "Convert printed RTF route manifests to structured spreadsheets",
	Long: `rutelister turns the semi-structured RTF route manifests the depot
prints into structured delivery-stop records and color-coded Excel
workbooks for the logistics staff.

Use convert for the full pipeline, inspect to examine how a manifest
decodes and parses, and history to list past conversion runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./rutelister.yaml or ~/.config/rutelister/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rutelister")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rutelister"))
		}
	}

	viper.SetEnvPrefix("RUTELISTER")
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
