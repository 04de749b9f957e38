package commands

import (
	"fmt"
	"io"

	"github.com/ped-tools/ped-go/pkg/ped"
	"github.com/spf13/cobra"
)

// RuleOutput describes one classification rule.
type RuleOutput struct {
	ID    string        `json:"id" yaml:"id"`
	Name  string        `json:"name" yaml:"name"`
	State string        `json:"fluid_state" yaml:"fluid_state"`
	Group int           `json:"fluid_group" yaml:"fluid_group"`
	Table string        `json:"table" yaml:"table"`
	Chart ped.ChartSpec `json:"chart" yaml:"chart"`
}

func newRulesCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the classification rules and their boundaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validFormat(format); err != nil {
				return err
			}
			return writeRules(a.stdout, format, a.registry)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, yaml)")

	return cmd
}

func writeRules(w io.Writer, format string, registry *ped.Registry) error {
	var out []RuleOutput
	for _, r := range registry.Rules() {
		out = append(out, RuleOutput{
			ID:    r.ID(),
			Name:  r.Name(),
			State: r.State().String(),
			Group: int(r.Group()),
			Table: r.Table(),
			Chart: r.Chart(),
		})
	}

	if format != "text" {
		return writeStructured(w, format, out)
	}

	for i, r := range out {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s  %s (%s)\n", r.ID, r.Name, r.Table)
		fmt.Fprintf(w, "  Fluid: %s, group %d\n", r.State, r.Group)
		fmt.Fprintln(w, "  Boundaries:")
		for _, s := range r.Chart.Segments {
			note := ""
			if s.Reference {
				note = " (reference only)"
			}
			axis := "DN"
			if s.Orientation == ped.Vertical {
				axis = "PS"
			}
			fmt.Fprintf(w, "    %-14s %s %g..%g%s\n", s.Label, axis, s.From, s.To, note)
		}
		for _, c := range r.Chart.Curves {
			fmt.Fprintf(w, "    %-14s DN %g..%g\n", c.Label, c.DNFrom, c.DNTo)
		}
	}
	return nil
}
