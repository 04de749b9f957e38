package commands

import (
	"github.com/ped-tools/ped-go/cmd/ped/interactive"
	"github.com/ped-tools/ped-go/pkg/log"
	"github.com/spf13/cobra"
)

func newShellCommand(a *app) *cobra.Command {
	var chartDir string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive classification shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.newService(log.SourceShell)
			if err != nil {
				return err
			}
			if chartDir == "" {
				chartDir = a.cfg.Chart.Dir
			}

			sh, err := interactive.New(svc, interactive.Config{ChartDir: chartDir})
			if err != nil {
				return err
			}
			sh.Run(cmd.Context())
			return nil
		},
	}
	cmd.Flags().StringVar(&chartDir, "chart-dir", "", "Directory for charts (default: chart.dir from config)")

	return cmd
}
