package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"synthetic_tis/profile"
)

var (
	profileLength   int
	profileNegative bool
	profileTop      int
	profileSVG      string
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile <corpus>",
	Short: "Summarise a generated corpus",
	Long: `Summarise a generated corpus

Reports sequence lengths, ATG at the TIS, in-frame upstream ATG and downstream
stop codons, GC content, region base composition against the background
frequencies of the class and the downstream codon usage. Plain or gzip input,
one sequence per line or FASTA.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("profile "+args[0], cmd.ErrOrStderr(), func() error {
			report, err := profile.Compute(args[0], profileLength)
			if err != nil {
				return err
			}
			profile.PrintReport(cmd.OutOrStdout(), report, profile.ExpectedFor(profileNegative), profileTop)

			if profileSVG == "" {
				return nil
			}
			f, err := os.Create(profileSVG)
			if err != nil {
				return fmt.Errorf("failed to create plot file: %w", err)
			}
			if err := profile.WritePlot(f, report); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			log.Printf("wrote composition plot to %s", profileSVG)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().IntVar(&profileLength, "length", 150, "half-length the corpus was generated with")
	profileCmd.Flags().BoolVar(&profileNegative, "neg", false, "compare against the negative background frequencies")
	profileCmd.Flags().IntVar(&profileTop, "top", 10, "codons to list in the usage table (0 hides it)")
	profileCmd.Flags().StringVar(&profileSVG, "svg", "", "write a per-position composition plot to this SVG file")
}
