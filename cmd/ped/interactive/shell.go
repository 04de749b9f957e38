// Package interactive provides the interactive classification shell for ped.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/ped-tools/ped-go/pkg/chart"
	"github.com/ped-tools/ped-go/pkg/ped"
	"github.com/ped-tools/ped-go/pkg/service"
)

// Config configures the shell.
type Config struct {
	// ChartDir receives charts drawn without an explicit file name.
	ChartDir string

	// Stdin and Stdout default to the terminal.
	Stdin  io.ReadCloser
	Stdout io.Writer
}

// Shell runs classify commands read line by line.
type Shell struct {
	svc      *service.Service
	chartDir string
	out      io.Writer
	rl       *readline.Instance

	// last successful classification, drawn by "chart"
	last *service.Outcome
}

// New creates a shell reading from a readline instance.
func New(svc *service.Service, cfg Config) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ped> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("classify",
				readline.PcItem("gas", readline.PcItem("1"), readline.PcItem("2")),
				readline.PcItem("liquid", readline.PcItem("1"), readline.PcItem("2")),
			),
			readline.PcItem("chart"),
			readline.PcItem("last"),
			readline.PcItem("rules"),
			readline.PcItem("help"),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := NewWithWriter(svc, cfg.ChartDir, rl.Stdout())
	s.rl = rl
	return s, nil
}

// NewWithWriter creates a shell without a terminal. Lines are fed with Exec.
func NewWithWriter(svc *service.Service, chartDir string, out io.Writer) *Shell {
	if chartDir == "" {
		chartDir = "."
	}
	return &Shell{svc: svc, chartDir: chartDir, out: out}
}

// Run starts the interactive command loop. It returns on quit, EOF or when
// ctx is done.
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return
		}

		if !s.Exec(ctx, line) {
			return
		}
	}
}

// Exec runs one command line and reports whether the shell should continue.
func (s *Shell) Exec(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" || strings.HasPrefix(input, "#") {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "classify", "c":
		s.cmdClassify(ctx, args)

	case "chart":
		s.cmdChart(ctx, args)

	case "last":
		s.cmdLast()

	case "rules":
		s.cmdRules()

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
PED Classification Commands:
  classify <state> <group> <ps> <dn>  - Classify (state gas|liquid, group 1|2, PS bar, DN mm)
  chart [file.svg]                    - Draw the chart of the last classification
  last                                - Show the last classification
  rules                               - List classification rules
  help                                - Show this help
  quit                                - Exit

  Example: classify gas 1 80 90`)
}

func (s *Shell) cmdClassify(ctx context.Context, args []string) {
	if len(args) != 4 {
		fmt.Fprintln(s.out, "Usage: classify <state> <group> <ps> <dn>")
		return
	}

	group, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid fluid group: %s\n", args[1])
		return
	}
	ps, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid PS: %s\n", args[2])
		return
	}
	dn, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid DN: %s\n", args[3])
		return
	}

	out, err := s.svc.Classify(ctx, service.Request{
		FluidState: args[0],
		FluidGroup: group,
		PS:         ps,
		DN:         dn,
	})
	switch {
	case errors.Is(err, ped.ErrInvalidFluidState):
		fmt.Fprintf(s.out, "Invalid fluid state: %s\n", args[0])
		return
	case errors.Is(err, ped.ErrInvalidFluidGroup):
		fmt.Fprintf(s.out, "Invalid fluid group: %d\n", group)
		return
	case err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	s.last = out
	fmt.Fprintf(s.out, "PS = %g bar, DN = %g mm → PED Category: %s\n", ps, dn, out.Result.Category)
}

func (s *Shell) cmdChart(ctx context.Context, args []string) {
	if s.last == nil {
		fmt.Fprintln(s.out, "Nothing to draw yet (run classify first)")
		return
	}

	res := s.last.Result
	path := filepath.Join(s.chartDir, chart.DefaultFileName(res.State, res.Group))
	if len(args) > 0 {
		path = args[0]
	}

	if err := s.svc.RenderChart(ctx, s.last.RunID, res, path); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Chart written to %s\n", path)
}

func (s *Shell) cmdLast() {
	if s.last == nil {
		fmt.Fprintln(s.out, "No classification yet")
		return
	}
	fmt.Fprintln(s.out, s.last.Result.String())
}

func (s *Shell) cmdRules() {
	for _, r := range s.svc.Registry().Rules() {
		fmt.Fprintf(s.out, "  %-6s %-7s %s  %s (%s)\n", r.ID(), r.State(), r.Group(), r.Name(), r.Table())
	}
}
