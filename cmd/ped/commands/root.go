// Package commands implements the ped CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ped-tools/ped-go/internal/config"
	"github.com/ped-tools/ped-go/pkg/chart"
	"github.com/ped-tools/ped-go/pkg/log"
	"github.com/ped-tools/ped-go/pkg/metrics"
	"github.com/ped-tools/ped-go/pkg/ped"
	"github.com/ped-tools/ped-go/pkg/ped/rules"
	"github.com/ped-tools/ped-go/pkg/service"
	"github.com/spf13/cobra"
)

// Version is the ped release.
const Version = "0.1.0"

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// exitError carries an exit code for a failure whose message has already
// been written to stderr.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// annotationNoSetup marks commands that run without loading the configuration.
const annotationNoSetup = "ped/no-setup"

// globalOptions holds the persistent flags.
type globalOptions struct {
	configPath  string
	logLevel    string
	logFormat   string
	tracePath   string
	metricsFile string
}

// app is the state shared by all commands of one invocation.
type app struct {
	opts   globalOptions
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg      *config.Config
	logger   *slog.Logger
	registry *ped.Registry

	traceFile *log.FileLogger
	metrics   *metrics.Metrics
}

// Execute runs the ped command line and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if closeErr := a.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err == nil {
		return exitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitCommandError
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ped",
		Short: "PED piping classification",
		Long: `ped classifies piping under the Pressure Equipment Directive 2014/68/EU
(Annex II, Tables 6-9) from the maximum allowable pressure PS (bar), the
nominal size DN (mm), the fluid state and the fluid group, and draws the
classification chart with the operating point marked.

Categories: SEP (sound engineering practice), I, II, III.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationNoSetup] == "true" {
				return nil
			}
			return a.setup()
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&a.opts.configPath, "config", "c", "", "Config file path (YAML, default ./"+config.DefaultFile+" if present)")
	f.StringVar(&a.opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	f.StringVar(&a.opts.logFormat, "log-format", "", "Log format (text, json)")
	f.StringVar(&a.opts.tracePath, "trace", "", "Append trace events to this .plog file")
	f.StringVar(&a.opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")

	cmd.AddCommand(
		newClassifyCommand(a),
		newExampleCommand(a),
		newRulesCommand(a),
		newShellCommand(a),
		newTraceCommand(a),
		newConfigCommand(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "ped version %s\n", Version)
			},
		},
	)

	return cmd
}

// setup loads the configuration, applies flag overrides, validates the
// result and builds the operational logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}

	if a.opts.logLevel != "" {
		cfg.Log.Level = a.opts.logLevel
	}
	if a.opts.logFormat != "" {
		cfg.Log.Format = a.opts.logFormat
	}
	if a.opts.tracePath != "" {
		cfg.Trace.Path = a.opts.tracePath
	}
	if a.opts.metricsFile != "" {
		cfg.Metrics.Textfile = a.opts.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.cfg = cfg
	a.logger = cfg.Log.NewLogger(a.stderr)
	a.registry = rules.NewDefaultRegistry()
	return nil
}

// newService builds a classification service tagged with source. Trace and
// metrics sinks are opened on first use and shared by later services.
func (a *app) newService(source log.Source) (*service.Service, error) {
	if a.traceFile == nil && a.cfg.Trace.Path != "" {
		fl, err := log.NewFileLogger(a.cfg.Trace.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open trace file: %w", err)
		}
		a.traceFile = fl
	}
	if a.metrics == nil && a.cfg.Metrics.Textfile != "" {
		a.metrics = metrics.New()
	}

	// the service logs every event through the operational logger itself
	var trace log.Logger
	if a.traceFile != nil {
		trace = a.traceFile
	}

	var recorder metrics.Recorder = metrics.Nop{}
	if a.metrics != nil {
		recorder = a.metrics
	}

	return service.New(service.Config{
		Registry: a.registry,
		Renderer: chart.NewSVGRenderer(a.cfg.Chart.ChartOptions()),
		Trace:    trace,
		Metrics:  recorder,
		Logger:   a.logger,
		Source:   source,
	})
}

// close flushes metrics and closes the trace file.
func (a *app) close() error {
	var errs []error
	if a.metrics != nil {
		if err := a.metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
			errs = append(errs, fmt.Errorf("failed to write metrics: %w", err))
		}
	}
	if a.traceFile != nil {
		if err := a.traceFile.Err(); err != nil {
			errs = append(errs, fmt.Errorf("failed to write trace: %w", err))
		}
		if err := a.traceFile.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
