package log

import (
	"time"

	"github.com/ped-tools/ped-go/pkg/ped"
)

// Event represents one trace event emitted by a classification run.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint" json:"timestamp"`

	// RunID identifies the invocation that produced the event (UUID).
	RunID string `cbor:"2,keyasint" json:"run_id"`

	// Source is the front end that issued the request.
	Source Source `cbor:"3,keyasint" json:"source"`

	// Kind classifies the event type.
	Kind Kind `cbor:"4,keyasint" json:"kind"`

	// Type-specific payload (one of these will be set).
	Classification *ClassificationEvent `cbor:"10,keyasint,omitempty" json:"classification,omitempty"`
	Chart          *ChartEvent          `cbor:"11,keyasint,omitempty" json:"chart,omitempty"`
	Error          *ErrorEventData      `cbor:"12,keyasint,omitempty" json:"error,omitempty"`
}

// Source indicates which front end issued a request.
type Source uint8

const (
	// SourceLibrary is a direct call through the service package.
	SourceLibrary Source = 0
	// SourceCLI is a one-shot ped command.
	SourceCLI Source = 1
	// SourceShell is the interactive shell.
	SourceShell Source = 2
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceLibrary:
		return "LIBRARY"
	case SourceCLI:
		return "CLI"
	case SourceShell:
		return "SHELL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the source name in JSON exports.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Kind classifies the event type.
type Kind uint8

const (
	// KindClassification records a completed classification.
	KindClassification Kind = 0
	// KindChart records a rendered chart file.
	KindChart Kind = 1
	// KindError records a rejected request or a failed render.
	KindError Kind = 2
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindClassification:
		return "CLASSIFICATION"
	case KindChart:
		return "CHART"
	case KindError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the kind name in JSON exports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind parses a kind name as printed by String (case-sensitive).
func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{KindClassification, KindChart, KindError} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// ClassificationEvent captures the inputs and the category of one run.
type ClassificationEvent struct {
	RuleID   string         `cbor:"1,keyasint" json:"rule"`
	State    ped.FluidState `cbor:"2,keyasint" json:"fluid_state"`
	Group    ped.FluidGroup `cbor:"3,keyasint" json:"fluid_group"`
	PS       float64        `cbor:"4,keyasint" json:"ps"`
	DN       float64        `cbor:"5,keyasint" json:"dn"`
	Category ped.Category   `cbor:"6,keyasint" json:"category"`

	// Duration is the time spent in the rule, stored as nanoseconds.
	Duration time.Duration `cbor:"7,keyasint,omitempty" json:"duration_ns,omitempty"`
}

// ChartEvent captures a chart written to disk.
type ChartEvent struct {
	RuleID string `cbor:"1,keyasint" json:"rule"`
	Path   string `cbor:"2,keyasint" json:"path"`
	Bytes  int64  `cbor:"3,keyasint,omitempty" json:"bytes,omitempty"`
}

// ErrorEventData captures a rejected request or a render failure.
type ErrorEventData struct {
	// Code is the input error code, empty for non-input failures.
	Code ped.ErrorCode `cbor:"1,keyasint,omitempty" json:"code,omitempty"`

	// Message is the error message.
	Message string `cbor:"2,keyasint" json:"message"`

	// Input echoes the raw request fields that were rejected.
	Input map[string]string `cbor:"3,keyasint,omitempty" json:"input,omitempty"`
}
