package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"synthetic_tis/config"
	"synthetic_tis/pwm"
	"synthetic_tis/tis_gen"
)

// checkCmd builds one pair from a flat weight table to make sure the
// generator runs.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a quick diagnostic",
	RunE: func(cmd *cobra.Command, args []string) error {
		table := pwm.Table{}
		for _, off := range pwm.Positions(2) {
			table[off] = [4]float64{25, 25, 25, 25}
		}
		g, err := tis_gen.NewGenerator(rand.New(rand.NewSource(1)), table, 9, 2)
		if err != nil {
			return err
		}
		pos := g.Generate(tis_gen.Positive)
		g.RemoveStops(pos)
		neg := g.Generate(tis_gen.Negative)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pos %s\nneg %s\n", pos, neg)
		fmt.Fprintf(out, "Successfully running synthetic_tis! (%s)\n", config.MainVersion)
		return nil
	},
}

// versionCmd lists the versions of every subcommand.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "synthetic_tis - Version Information")
		fmt.Fprintf(out, "\tsynthetic_tis:\t%s\n", config.MainVersion)
		fmt.Fprintf(out, "\tgenerate:\t%s\n", config.Generate)
		fmt.Fprintf(out, "\tprofile:\t%s\n", config.Profile)
		fmt.Fprintf(out, "\tcheck:\t\t%s\n", config.Check)
		fmt.Fprintf(out, "\tbenchmark:\t%s\n", config.Benchmark)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
