package commands

import (
	"github.com/ped-tools/ped-go/pkg/log"
	"github.com/ped-tools/ped-go/pkg/ped"
	"github.com/ped-tools/ped-go/pkg/service"
	"github.com/spf13/cobra"
)

// WorkedExample is the reference case shipped with the tool.
var WorkedExample = service.Request{
	FluidState: ped.StateGas.String(),
	FluidGroup: int(ped.Group1),
	PS:         80,
	DN:         90,
}

func newExampleCommand(a *app) *cobra.Command {
	var (
		chartDir string
		noChart  bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Run the worked example (PS=80 bar, DN=90 mm, gas, group 1)",
		Long: `Classify the worked example PS=80 bar, DN=90 mm, gas, fluid group 1
(category III) and draw its chart into the chart directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validFormat(format); err != nil {
				return err
			}
			dir := chartDir
			if dir == "" {
				dir = a.cfg.Chart.Dir
			}
			if noChart {
				dir = ""
			}

			svc, err := a.newService(log.SourceCLI)
			if err != nil {
				return err
			}
			req := WorkedExample
			req.ChartPath = chartPath("", dir, req.FluidState, req.FluidGroup)

			out, err := svc.Classify(cmd.Context(), req)
			if out != nil {
				if werr := writeOutcome(a.stdout, format, svc.Registry(), out); werr != nil && err == nil {
					err = werr
				}
			}
			return err
		},
	}

	cmd.Flags().StringVar(&chartDir, "chart-dir", "", "Directory for the chart (default: chart.dir from config)")
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "Do not draw the chart")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, yaml)")

	return cmd
}
