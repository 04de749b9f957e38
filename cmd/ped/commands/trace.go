package commands

import (
	"fmt"
	"strings"

	"github.com/ped-tools/ped-go/pkg/log"
	"github.com/ped-tools/ped-go/pkg/ped"
	"github.com/spf13/cobra"
)

// traceFilterFlags holds the filter flags shared by the trace subcommands.
type traceFilterFlags struct {
	runID    string
	kind     string
	source   string
	state    string
	group    int
	category string
}

func (f *traceFilterFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.runID, "run", "", "Only events of this run ID")
	fl.StringVar(&f.kind, "kind", "", "Only events of this kind (classification, chart, error)")
	fl.StringVar(&f.source, "source", "", "Only events from this front end (library, cli, shell)")
	fl.StringVar(&f.state, "state", "", "Only classifications of this fluid state")
	fl.IntVar(&f.group, "group", 0, "Only classifications of this fluid group")
	fl.StringVar(&f.category, "category", "", "Only classifications with this category")
}

// filter converts the flags to a log.Filter.
func (f *traceFilterFlags) filter() (log.Filter, error) {
	filter := log.Filter{RunID: f.runID}

	if f.kind != "" {
		k, ok := log.ParseKind(strings.ToUpper(f.kind))
		if !ok {
			return filter, fmt.Errorf("invalid kind: %s (must be classification, chart, or error)", f.kind)
		}
		filter.Kind = &k
	}
	if f.source != "" {
		s, err := parseSource(f.source)
		if err != nil {
			return filter, err
		}
		filter.Source = &s
	}
	if f.state != "" {
		s, err := ped.ParseFluidState(f.state)
		if err != nil {
			return filter, err
		}
		filter.State = &s
	}
	if f.group != 0 {
		g, err := ped.ParseFluidGroup(f.group)
		if err != nil {
			return filter, err
		}
		filter.Group = &g
	}
	if f.category != "" {
		c, err := ped.ParseCategory(f.category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}
	return filter, nil
}

// parseSource parses a source name (case-insensitive).
func parseSource(s string) (log.Source, error) {
	switch strings.ToLower(s) {
	case "library":
		return log.SourceLibrary, nil
	case "cli":
		return log.SourceCLI, nil
	case "shell":
		return log.SourceShell, nil
	default:
		return 0, fmt.Errorf("invalid source: %s (must be library, cli, or shell)", s)
	}
}

func newTraceCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Inspect a trace log (view, stats, export)",
		Long: `Inspect trace logs written with --trace.

Trace files are CBOR event streams (.plog). Every classification, chart and
rejected request of a run is one event.`,
	}

	var viewFlags traceFilterFlags
	view := &cobra.Command{
		Use:   "view <file.plog>",
		Short: "View a trace log in human-readable format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := viewFlags.filter()
			if err != nil {
				return err
			}
			return RunView(args[0], filter, a.stdout)
		},
	}
	viewFlags.register(view)

	stats := &cobra.Command{
		Use:   "stats <file.plog>",
		Short: "Show statistics about a trace log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunStats(args[0], a.stdout)
		},
	}

	var (
		exportFlags  traceFilterFlags
		exportFormat string
		exportOutput string
	)
	export := &cobra.Command{
		Use:   "export <file.plog>",
		Short: "Export a trace log to JSON lines or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := exportFlags.filter()
			if err != nil {
				return err
			}
			return RunExport(args[0], filter, exportFormat, exportOutput, a.stdout)
		},
	}
	exportFlags.register(export)
	export.Flags().StringVar(&exportFormat, "format", "jsonl", "Export format (jsonl, csv)")
	export.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")

	cmd.AddCommand(view, stats, export)
	return cmd
}
