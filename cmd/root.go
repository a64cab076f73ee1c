// Package cmd is for command line interactions with the TIS generator
package cmd

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"synthetic_tis/benchmark"
	"synthetic_tis/config"
)

var (
	cfgFile      string
	benchmarking bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "synthetic_tis",
	Short: `Generate synthetic translation initiation site datasets.
Positive sequences carry a consensus motif around ATG, negatives a downstream stop codon`,
	Version:       config.MainVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML settings file")
	rootCmd.PersistentFlags().BoolVar(&benchmarking, "benchmark", false, "report time and memory use of the command")
}

// initConfig reads the settings file and TIS_ environment variables, if any.
func initConfig() {
	config.SetDefaults(viper.GetViper())

	viper.SetEnvPrefix("TIS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("failed to read settings file %s: %v", cfgFile, err)
	}
}

// run calls f, wrapped in a benchmark when --benchmark was given.
func run(label string, out io.Writer, f func() error) error {
	if !benchmarking {
		return f()
	}
	if out == nil {
		out = os.Stderr
	}
	_, err := benchmark.Run(out, label, f)
	return err
}
