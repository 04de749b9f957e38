package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/ped-tools/ped-go/pkg/chart"
	"github.com/ped-tools/ped-go/pkg/log"
	"github.com/ped-tools/ped-go/pkg/metrics"
	"github.com/ped-tools/ped-go/pkg/ped"
)

// ErrInvalidConfig is returned by New for an unusable Config.
var ErrInvalidConfig = errors.New("invalid service config")

// Config configures a Service.
type Config struct {
	// Registry supplies the classification rules. Required.
	Registry *ped.Registry

	// Renderer draws charts. If nil, ChartPath in a Request is ignored.
	Renderer chart.Renderer

	// Trace receives one event per outcome. If nil, tracing is disabled.
	Trace log.Logger

	// Metrics counts outcomes. If nil, metrics are disabled.
	Metrics metrics.Recorder

	// Logger, when set, receives every trace event through a log.SlogAdapter.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// Source tags trace events with the calling front end.
	Source log.Source

	// Now and NewRunID default to time.Now and uuid.NewString.
	Now      func() time.Time
	NewRunID func() string
}

// Request carries the raw caller inputs.
type Request struct {
	FluidState string
	FluidGroup int
	PS         float64
	DN         float64

	// ChartPath, when set, receives the rule's chart with the point marked.
	ChartPath string
}

// Outcome is the result of a successful classification.
type Outcome struct {
	RunID  string     `json:"run_id" yaml:"run_id"`
	Result ped.Result `json:"result" yaml:"result"`

	// ChartPath is set only when a chart was written.
	ChartPath string `json:"chart,omitempty" yaml:"chart,omitempty"`
}

// Service classifies requests and reports outcomes. It is safe for
// concurrent use when its Renderer, Trace and Metrics are.
type Service struct {
	registry *ped.Registry
	renderer chart.Renderer
	trace    log.Logger
	metrics  metrics.Recorder
	source   log.Source
	now      func() time.Time
	newRunID func() string
}

// New creates a Service, filling unset optional fields with no-op defaults.
func New(config Config) (*Service, error) {
	if config.Registry == nil {
		return nil, fmt.Errorf("%w: registry is required", ErrInvalidConfig)
	}

	s := &Service{
		registry: config.Registry,
		renderer: config.Renderer,
		trace:    config.Trace,
		metrics:  config.Metrics,
		source:   config.Source,
		now:      config.Now,
		newRunID: config.NewRunID,
	}
	if s.trace == nil {
		s.trace = log.NoopLogger{}
	}
	if config.Logger != nil {
		s.trace = log.NewMultiLogger(s.trace, log.NewSlogAdapter(config.Logger))
	}
	if s.metrics == nil {
		s.metrics = metrics.Nop{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newRunID == nil {
		s.newRunID = uuid.NewString
	}
	return s, nil
}

// Registry returns the registry the service classifies with.
func (s *Service) Registry() *ped.Registry {
	return s.registry
}

// Classify validates req, classifies it and renders a chart when requested.
//
// Input errors wrap ped.ErrInvalidFluidState, ped.ErrInvalidFluidGroup or
// ped.ErrInvalidInput and return a nil Outcome. A chart failure returns the
// Outcome together with the error so the category is not lost.
func (s *Service) Classify(ctx context.Context, req Request) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	runID := s.newRunID()

	state, err := ped.ParseFluidState(req.FluidState)
	if err != nil {
		s.reject(runID, req, err)
		return nil, err
	}
	group, err := ped.ParseFluidGroup(req.FluidGroup)
	if err != nil {
		s.reject(runID, req, err)
		return nil, err
	}
	point, err := ped.NewOperatingPoint(req.PS, req.DN)
	if err != nil {
		s.reject(runID, req, err)
		return nil, err
	}

	start := time.Now()
	result, err := s.registry.Classify(state, group, point)
	elapsed := time.Since(start)
	if err != nil {
		s.reject(runID, req, err)
		return nil, err
	}

	s.trace.Log(log.Event{
		Timestamp: s.now(),
		RunID:     runID,
		Source:    s.source,
		Kind:      log.KindClassification,
		Classification: &log.ClassificationEvent{
			RuleID:   result.RuleID,
			State:    result.State,
			Group:    result.Group,
			PS:       point.PS,
			DN:       point.DN,
			Category: result.Category,
			Duration: elapsed,
		},
	})
	s.metrics.Classified(result, elapsed.Seconds())

	out := &Outcome{RunID: runID, Result: result}
	if req.ChartPath == "" || s.renderer == nil {
		return out, nil
	}
	if err := s.RenderChart(ctx, runID, result, req.ChartPath); err != nil {
		return out, err
	}
	out.ChartPath = req.ChartPath
	return out, nil
}

// RenderChart draws the chart of the rule that produced result into path.
// runID ties the trace event to the classification it belongs to.
func (s *Service) RenderChart(ctx context.Context, runID string, result ped.Result, path string) error {
	if s.renderer == nil {
		return errors.New("no chart renderer configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	rule, ok := s.registry.Lookup(result.State, result.Group)
	if !ok {
		return fmt.Errorf("%w for %s %s", ped.ErrNoRule, result.State, result.Group)
	}

	err := chart.RenderFile(s.renderer, path, rule.Chart(), result)
	s.metrics.ChartRendered(rule.ID(), err)
	if err != nil {
		s.trace.Log(log.Event{
			Timestamp: s.now(),
			RunID:     runID,
			Source:    s.source,
			Kind:      log.KindError,
			Error: &log.ErrorEventData{
				Message: err.Error(),
				Input:   map[string]string{"chart": path},
			},
		})
		return err
	}

	var size int64
	if info, statErr := os.Stat(path); statErr == nil {
		size = info.Size()
	}
	s.trace.Log(log.Event{
		Timestamp: s.now(),
		RunID:     runID,
		Source:    s.source,
		Kind:      log.KindChart,
		Chart:     &log.ChartEvent{RuleID: rule.ID(), Path: path, Bytes: size},
	})
	return nil
}

// reject reports an input error on every channel.
func (s *Service) reject(runID string, req Request, err error) {
	code := ped.CodeOf(err)
	s.trace.Log(log.Event{
		Timestamp: s.now(),
		RunID:     runID,
		Source:    s.source,
		Kind:      log.KindError,
		Error: &log.ErrorEventData{
			Code:    code,
			Message: err.Error(),
			Input: map[string]string{
				"fluid_state": req.FluidState,
				"fluid_group": strconv.Itoa(req.FluidGroup),
				"ps":          strconv.FormatFloat(req.PS, 'g', -1, 64),
				"dn":          strconv.FormatFloat(req.DN, 'g', -1, 64),
			},
		},
	})
	s.metrics.Rejected(code)
}
