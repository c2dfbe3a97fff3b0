// Package cli is for command line interactions with chromalign.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"chromalign/internal/appcore"
	"chromalign/internal/config"
	"chromalign/internal/logging"
	"chromalign/internal/version"
	"chromalign/internal/writers"
)

// app carries per-invocation state shared by the commands.
type app struct {
	stdout, stderr io.Writer

	cfgFile  string
	noTrace  bool
	noHeader bool

	v    *viper.Viper
	cfg  config.Config
	log  *slog.Logger
	code int
}

// Run executes the command line in argv and returns the process exit code.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, context.Canceled) {
			return appcore.ExitCanceled
		}
		return appcore.ExitUsage
	}
	return a.code
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chromalign",
		Short: "Extract chromosomes from a genome and find the most similar pair",
		Long: `Extract named chromosomes from a genome by coordinate range, score every
pair by rigid-offset alignment, and report the best-matching pair.

Similarity is matches at the best offset divided by the length of the
second sequence of the pair, times 100. No insertions or deletions are modelled.`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./chromalign.yaml or ~/.config/chromalign/chromalign.yaml)")
	pf.IntP(config.KeyThreads, "t", 0, "worker threads (0=all CPUs)")
	pf.Int(config.KeyMaxLength, 0, "cap each sequence to N symbols before comparison (0=no cap)")
	pf.StringP(config.KeyOutput, "o", writers.FormatText, "output: text | tsv | json | jsonl")
	pf.BoolVar(&a.noTrace, "no-trace", false, "omit the alignment trace of the best pair")
	pf.BoolVar(&a.noHeader, "no-header", false, "suppress the tsv header line")
	pf.Bool(config.KeyProgress, false, "show a progress bar on stderr")
	pf.Int(config.KeyNoMatchExitCode, 1, "exit code when no pair scores above zero")
	pf.BoolP(config.KeyQuiet, "q", false, "only log errors")
	pf.Bool(config.KeyVerbose, false, "log debug detail")
	pf.String(config.KeyLogFormat, "text", "log format: text | json")

	root.AddCommand(a.compareCmd(), a.extractCmd(), a.alignCmd(), a.versionCmd())
	return root
}

// setup loads configuration for cmd, binding every flag it can see to viper,
// and builds the logger. Two positionals stand in for --genome and --coords.
func (a *app) setup(cmd *cobra.Command, positionals []string, requireInputs bool) error {
	a.v = config.NewViper(a.cfgFile)
	if err := config.ReadInFile(a.v, a.cfgFile != ""); err != nil {
		return err
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "no-trace" || f.Name == "no-header" || f.Name == "help" || f.Name == "version" {
			return
		}
		if err := a.v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return bindErr
	}
	if a.noTrace {
		a.v.Set(config.KeyTrace, false)
	}
	if a.noHeader {
		a.v.Set(config.KeyHeader, false)
	}
	if len(positionals) == 2 {
		a.v.Set(config.KeyGenome, positionals[0])
		a.v.Set(config.KeyCoords, positionals[1])
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if requireInputs {
		if err := cfg.ValidateInputs(); err != nil {
			return err
		}
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(a.stderr, logging.LevelFor(cfg.Quiet, cfg.Verbose), format)
	return nil
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "chromalign version %s\n", version.Version)
		},
	}
}
