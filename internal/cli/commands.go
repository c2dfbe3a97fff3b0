package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"chromalign/internal/appcore"
	"chromalign/internal/config"
)

// inputFlags registers -g/--genome and -c/--coords on cmd.
func inputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(config.KeyGenome, "g", "", "genome sequence file (.fasta/.txt, .gz, or '-' for stdin)")
	cmd.Flags().StringP(config.KeyCoords, "c", "", "chromosome table (.csv/.tsv): id,start,end with a header line")
}

// inputArgs accepts no positionals or exactly "<genome> <coords>".
func inputArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args) == 2 {
		return nil
	}
	return fmt.Errorf("%w: give both <genome> and <coords>, or use --genome/--coords", config.ErrInvalid)
}

func (a *app) compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [genome coords]",
		Short: "Score every chromosome pair and report the best match",
		Example: `  chromalign compare -g genome.fasta -c chromosomes.csv
  chromalign compare genome.fasta chromosomes.csv -o tsv --no-header
  chromalign compare -g genome.fa.gz -c chromosomes.csv -o jsonl --max-length 5000`,
		Aliases: []string{"cmp"},
		Args:    inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, args, true); err != nil {
				return err
			}
			a.code = appcore.Compare(cmd.Context(), a.cfg, a.stdout, a.stderr, a.log)
			return nil
		},
	}
	inputFlags(cmd)
	return cmd
}

func (a *app) extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "extract [genome coords]",
		Short:   "Write the extracted chromosomes as FASTA",
		Example: "  chromalign extract -g genome.fasta -c chromosomes.csv --fasta-width 80 > chromosomes.fa",
		Args:    inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, args, true); err != nil {
				return err
			}
			a.code = appcore.Extract(cmd.Context(), a.cfg, a.stdout, a.log)
			return nil
		},
	}
	inputFlags(cmd)
	cmd.Flags().Int(config.KeyFastaWidth, 60, "wrap sequence lines at N symbols (0=no wrapping)")
	return cmd
}

func (a *app) alignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "align <seq1> <seq2>",
		Short: "Align two literal sequences",
		Long: `Align seq2 against seq1 at every rigid offset and print the best one.
The similarity divisor is the length of seq2, so swapping the arguments can
change the result.`,
		Example: "  chromalign align AACGT CG",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, nil, false); err != nil {
				return err
			}
			a.code = appcore.AlignPair(cmd.Context(), a.cfg, args[0], args[1], a.stdout, a.stderr, a.log)
			return nil
		},
	}
}
