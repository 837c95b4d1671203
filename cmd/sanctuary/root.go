package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "sanctuary",
	Short: "A procedural night garden that grows with gratitude",
	Long: "Sanctuary draws a desert night garden: rake the sand, place emotion stars and stones, " +
		"and watch a tree grow with every gratitude entry in your journal.",
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .sanctuary.toml)")
	pf.BoolP("verbose", "v", false, "print per-frame timing")
	pf.Int64("seed", 0, "session seed (0 picks one from the clock)")
	pf.Int("width", 0, "canvas width in pixels")
	pf.Int("height", 0, "canvas height in pixels")
	pf.String("journal", "", "gratitude journal (.txt file or .db SQLite)")

	_ = viper.BindPFlag("debug", pf.Lookup("verbose"))
	_ = viper.BindPFlag("seed", pf.Lookup("seed"))
	_ = viper.BindPFlag("width", pf.Lookup("width"))
	_ = viper.BindPFlag("height", pf.Lookup("height"))
	_ = viper.BindPFlag("journal", pf.Lookup("journal"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".sanctuary")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SANCTUARY")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
