package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ped-tools/ped-go/pkg/chart"
	"github.com/ped-tools/ped-go/pkg/log"
	"github.com/ped-tools/ped-go/pkg/ped"
	"github.com/ped-tools/ped-go/pkg/service"
	"github.com/spf13/cobra"
)

// ClassifyOptions configures the classify command.
type ClassifyOptions struct {
	State    string
	Group    int
	PS       float64
	DN       float64
	Chart    string
	ChartDir string
	Format   string
}

func newClassifyCommand(a *app) *cobra.Command {
	var opts ClassifyOptions

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify one operating point",
		Long: `Classify one operating point and optionally draw the chart.

Exit codes: 0 success, 1 command error, 2 invalid input.`,
		Example: `  ped classify --state gas --group 1 --ps 80 --dn 90
  ped classify --state liquid --group 2 --ps 5 --dn 40 --chart-dir charts
  ped classify --state gas --group 2 --ps 10 --dn 100 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClassify(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.State, "state", "", "Fluid state (gas, liquid)")
	f.IntVar(&opts.Group, "group", 0, "Fluid group (1, 2)")
	f.Float64Var(&opts.PS, "ps", 0, "Maximum allowable pressure PS in bar")
	f.Float64Var(&opts.DN, "dn", 0, "Nominal size DN in mm")
	f.StringVar(&opts.Chart, "chart", "", "Write the chart to this SVG file")
	f.StringVar(&opts.ChartDir, "chart-dir", "", "Write the chart under its default name into this directory")
	f.StringVarP(&opts.Format, "format", "f", "text", "Output format (text, json, yaml)")
	for _, name := range []string{"state", "group", "ps", "dn"} {
		_ = cmd.MarkFlagRequired(name)
	}
	cmd.MarkFlagsMutuallyExclusive("chart", "chart-dir")

	return cmd
}

func (a *app) runClassify(ctx context.Context, opts ClassifyOptions) error {
	if err := validFormat(opts.Format); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	svc, err := a.newService(log.SourceCLI)
	if err != nil {
		return err
	}

	req := service.Request{
		FluidState: opts.State,
		FluidGroup: opts.Group,
		PS:         opts.PS,
		DN:         opts.DN,
		ChartPath:  chartPath(opts.Chart, opts.ChartDir, opts.State, opts.Group),
	}

	out, err := svc.Classify(ctx, req)
	if err != nil && out == nil {
		return a.reportInputError(req, err)
	}
	if err != nil {
		// the category is still printed before the chart error is reported
		_ = writeOutcome(a.stdout, opts.Format, svc.Registry(), out)
		return err
	}
	return writeOutcome(a.stdout, opts.Format, svc.Registry(), out)
}

// chartPath resolves --chart/--chart-dir. The default name needs a valid
// state and group; invalid input never reaches the renderer anyway.
func chartPath(file, dir, state string, group int) string {
	if file != "" {
		return file
	}
	if dir == "" {
		return ""
	}
	s, err := ped.ParseFluidState(state)
	if err != nil {
		return filepath.Join(dir, "chart.svg")
	}
	return filepath.Join(dir, chart.DefaultFileName(s, ped.FluidGroup(group)))
}

// reportInputError prints a one-line diagnostic for rejected input and maps
// it to an exit code.
func (a *app) reportInputError(req service.Request, err error) error {
	switch {
	case errors.Is(err, ped.ErrInvalidFluidState):
		fmt.Fprintf(a.stderr, "Invalid fluid state: %s\n", req.FluidState)
	case errors.Is(err, ped.ErrInvalidFluidGroup):
		fmt.Fprintf(a.stderr, "Invalid fluid group: %d\n", req.FluidGroup)
	case errors.Is(err, ped.ErrInvalidInput):
		fmt.Fprintf(a.stderr, "Invalid input: %v\n", err)
	default:
		return err
	}
	return &exitError{code: exitValidation, err: err}
}

// classifyOutput is the structured form of a classification.
type classifyOutput struct {
	service.Outcome `yaml:",inline"`
	Rule            string  `json:"rule_name" yaml:"rule_name"`
	Table           string  `json:"table" yaml:"table"`
	Product         float64 `json:"ps_dn" yaml:"ps_dn"`
}

func writeOutcome(w io.Writer, format string, registry *ped.Registry, out *service.Outcome) error {
	res := out.Result
	var name, table string
	if rule := registry.GetRule(res.RuleID); rule != nil {
		name, table = rule.Name(), rule.Table()
	}

	if format != "text" {
		return writeStructured(w, format, classifyOutput{
			Outcome: *out,
			Rule:    name,
			Table:   table,
			Product: res.Point.Product(),
		})
	}

	fmt.Fprintf(w, "Input: PS = %g bar, DN = %g mm (%s, %s) → PED Category: %s\n",
		res.Point.PS, res.Point.DN, res.State, res.Group, res.Category)
	fmt.Fprintf(w, "  Rule:    %s %s (%s)\n", res.RuleID, name, table)
	fmt.Fprintf(w, "  PS·DN:   %g\n", res.Point.Product())
	if out.ChartPath != "" {
		fmt.Fprintf(w, "  Chart:   %s\n", out.ChartPath)
	}
	return nil
}
