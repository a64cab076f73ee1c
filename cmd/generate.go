package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"synthetic_tis/config"
	"synthetic_tis/tis_gen"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a positive and a negative TIS corpus",
	Long: `Write a positive and a negative TIS corpus

Every positive sequence is built around ATG with a consensus motif sampled
from the position weight matrix and zero to two upstream ATG codons, and has
its in-frame downstream stop codons redrawn. Every negative sequence carries
one stop codon downstream of where the consensus would be. All other bases
are drawn from fixed background frequencies.

The weight matrix has four rows, one per nucleotide, each the letter followed
by 2*motif-span weights for offsets -l..-1 and 3..l+2 around the start codon.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.New(viper.GetViper())
		if err != nil {
			return err
		}
		label := fmt.Sprintf("generate rows=%d length=%d motif-span=%d", c.Rows, c.Length, c.MotifSpan)

		return run(label, cmd.ErrOrStderr(), func() error {
			log.Printf("generating %d sequence pairs (length %d, motif span %d) from %s", c.Rows, c.Length, c.MotifSpan, c.PWM)
			sum, err := tis_gen.WriteTIS(c.Params())
			if err != nil {
				return err
			}
			log.Printf("wrote %d positive sequences to %s", sum.Stats.Positives, sum.PosPath)
			log.Printf("wrote %d negative sequences to %s", sum.Stats.Negatives, sum.NegPath)
			log.Printf("upstream start codons planted: %d, downstream stop codons redrawn: %d", sum.Stats.UpstreamStarts, sum.Stats.StopsReplaced)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	d := config.Defaults
	flags := generateCmd.Flags()
	flags.IntP("rows", "n", d["rows"].(int), "number of positive/negative sequence pairs")
	flags.StringP("pwm", "p", d["pwm"].(string), "position weight matrix file")
	flags.String("pos-out", d["pos-out"].(string), "positive corpus output path")
	flags.String("neg-out", d["neg-out"].(string), "negative corpus output path")
	flags.Int("length", d["length"].(int), "bases on either side of the start codon (multiple of 3)")
	flags.IntP("motif-span", "l", d["motif-span"].(int), "consensus half-span around the start codon")
	flags.Int64("seed", 0, "random seed (0 seeds from the clock)")
	flags.String("format", d["format"].(string), "output format: lines or fasta")
	flags.Bool("gzip", false, "gzip the corpora (.gz is appended)")

	// Bind the parameters to viper
	for _, key := range []string{"rows", "pwm", "pos-out", "neg-out", "length", "motif-span", "seed", "format", "gzip"} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			log.Fatalf("failed to bind flag %s: %v", key, err)
		}
	}
}
