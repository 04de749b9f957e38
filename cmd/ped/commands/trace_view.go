package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/ped-tools/ped-go/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [run:id] SOURCE KIND
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [run:%s] %-5s %s\n", ts, shortenRunID(event.RunID), event.Source, event.Kind)

	switch {
	case event.Classification != nil:
		c := event.Classification
		fmt.Fprintf(w, "  Rule: %s (%s, %s)\n", c.RuleID, c.State, c.Group)
		fmt.Fprintf(w, "  PS=%g bar, DN=%g mm -> %s\n", c.PS, c.DN, c.Category)
		if c.Duration > 0 {
			fmt.Fprintf(w, "  Duration: %s\n", formatDuration(c.Duration))
		}
	case event.Chart != nil:
		fmt.Fprintf(w, "  Rule: %s\n", event.Chart.RuleID)
		fmt.Fprintf(w, "  Path: %s", event.Chart.Path)
		if event.Chart.Bytes > 0 {
			fmt.Fprintf(w, " (%d bytes)", event.Chart.Bytes)
		}
		fmt.Fprintln(w)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatErrorDetails writes error details with the rejected input sorted by key.
func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	if e.Code != "" {
		fmt.Fprintf(w, "  Code: %s\n", e.Code)
	}
	fmt.Fprintf(w, "  Message: %s\n", e.Message)
	if len(e.Input) > 0 {
		keys := make([]string, 0, len(e.Input))
		for k := range e.Input {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + e.Input[k]
		}
		fmt.Fprintf(w, "  Input: %s\n", strings.Join(parts, " "))
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// RunView prints every event in path matching filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
