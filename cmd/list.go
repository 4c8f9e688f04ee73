package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available derivations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter{rootOpts.Format, cmd.OutOrStdout()}
			if out.format == "json" {
				return out.writeJSON(Response{Status: "ok", Data: derivations})
			}

			width := lo.Max(lo.Map(derivations, func(d derivation, _ int) int { return len(d.Name) }))
			for _, d := range derivations {
				if _, err := fmt.Fprintf(out.w, "%-*s  %s\n", width, d.Name, d.Summary); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func derivationNames() []string {
	return lo.Map(derivations, func(d derivation, _ int) string { return d.Name })
}
