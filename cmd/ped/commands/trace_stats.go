package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/ped-tools/ped-go/pkg/log"
	"github.com/ped-tools/ped-go/pkg/ped"
)

// Stats holds aggregate statistics about a trace log.
type Stats struct {
	TotalEvents       int
	EventsByKind      map[log.Kind]int
	EventsBySource    map[log.Source]int
	CategoriesByRule  map[string]map[ped.Category]int
	RejectionsByCode  map[ped.ErrorCode]int
	Runs              map[string]struct{}
	Charts            int
	TotalClassifyTime time.Duration
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

func newStats() *Stats {
	return &Stats{
		EventsByKind:     make(map[log.Kind]int),
		EventsBySource:   make(map[log.Source]int),
		CategoriesByRule: make(map[string]map[ped.Category]int),
		RejectionsByCode: make(map[ped.ErrorCode]int),
		Runs:             make(map[string]struct{}),
	}
}

// add folds one event into the statistics.
func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByKind[event.Kind]++
	s.EventsBySource[event.Source]++
	if event.RunID != "" {
		s.Runs[event.RunID] = struct{}{}
	}

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	switch {
	case event.Classification != nil:
		c := event.Classification
		byCat, ok := s.CategoriesByRule[c.RuleID]
		if !ok {
			byCat = make(map[ped.Category]int)
			s.CategoriesByRule[c.RuleID] = byCat
		}
		byCat[c.Category]++
		s.TotalClassifyTime += c.Duration
	case event.Chart != nil:
		s.Charts++
	case event.Error != nil:
		code := event.Error.Code
		if code == "" {
			code = "OTHER"
		}
		s.RejectionsByCode[code]++
	}
}

// RunStats analyzes the trace log and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := newStats()
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== PED Classification Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Runs:         %d\n", len(stats.Runs))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for _, k := range []log.Kind{log.KindClassification, log.KindChart, log.KindError} {
		if count := stats.EventsByKind[k]; count > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", k.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Source:")
	for _, s := range []log.Source{log.SourceLibrary, log.SourceCLI, log.SourceShell} {
		if count := stats.EventsBySource[s]; count > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", s.String()+":", count)
		}
	}

	if len(stats.CategoriesByRule) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Categories by Rule:")
		ruleIDs := make([]string, 0, len(stats.CategoriesByRule))
		for id := range stats.CategoriesByRule {
			ruleIDs = append(ruleIDs, id)
		}
		sort.Strings(ruleIDs)
		for _, id := range ruleIDs {
			fmt.Fprintf(w, "  %-8s", id)
			for _, c := range ped.Categories {
				fmt.Fprintf(w, " %s=%d", c, stats.CategoriesByRule[id][c])
			}
			fmt.Fprintln(w)
		}
		classified := stats.EventsByKind[log.KindClassification]
		if classified > 0 && stats.TotalClassifyTime > 0 {
			fmt.Fprintf(w, "  Mean rule time: %s\n", formatDuration(stats.TotalClassifyTime/time.Duration(classified)))
		}
	}

	if stats.Charts > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Charts: %d\n", stats.Charts)
	}

	if len(stats.RejectionsByCode) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Errors by Code:")
		codes := make([]string, 0, len(stats.RejectionsByCode))
		for code := range stats.RejectionsByCode {
			codes = append(codes, string(code))
		}
		sort.Strings(codes)
		for _, code := range codes {
			fmt.Fprintf(w, "  %-22s %d\n", code+":", stats.RejectionsByCode[ped.ErrorCode(code)])
		}
	}
}
