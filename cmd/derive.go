package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/glossopoeia/pts/derive"
	"github.com/glossopoeia/pts/kernel/level"
)

type DeriveOptions struct {
	Level uint
}

func NewDeriveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeriveOptions{}

	cmd := &cobra.Command{
		Use:   "derive <name>",
		Short: "Run a derivation through the kernel and print the judgement",
		Long: `Run one of the derivations shown by 'pts list' and print the
resulting judgement as Γ ⊢ subject : type.

With --verbose every kernel rule application is logged to stderr.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().UintVarP(&opts.Level, "level", "l", 0, "universe level of the postulated types")

	return cmd
}

func runDerive(rootOpts *RootOptions, opts *DeriveOptions, name string, cmd *cobra.Command) error {
	out := formatter{rootOpts.Format, cmd.OutOrStdout()}
	logger := newLogger(cmd.ErrOrStderr(), rootOpts.Verbose)

	d, ok := lo.Find(derivations, func(d derivation) bool { return d.Name == name })
	if !ok {
		return out.failure(fmt.Errorf("unknown derivation %q: must be one of %v", name, derivationNames()))
	}

	logger.Debug("deriving", "name", name, "level", opts.Level)
	j, err := d.build(derive.New(logger), level.FromInt(opts.Level))
	if err != nil {
		return out.failure(fmt.Errorf("derivation %s failed: %w", name, err))
	}
	return out.judgement(j)
}
