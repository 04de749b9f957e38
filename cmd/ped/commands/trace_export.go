package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ped-tools/ped-go/pkg/log"
)

// RunExport exports the trace log in the given format to output, or to
// stdout when output is empty.
func RunExport(path string, filter log.Filter, format, output string, stdout io.Writer) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	w := stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"timestamp", "run_id", "source", "kind", "rule", "fluid_state", "fluid_group", "ps", "dn", "category", "chart", "error_code", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := make([]string, len(header))
		row[0] = event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
		row[1] = event.RunID
		row[2] = event.Source.String()
		row[3] = event.Kind.String()
		switch {
		case event.Classification != nil:
			c := event.Classification
			row[4] = c.RuleID
			row[5] = c.State.String()
			row[6] = strconv.Itoa(int(c.Group))
			row[7] = strconv.FormatFloat(c.PS, 'g', -1, 64)
			row[8] = strconv.FormatFloat(c.DN, 'g', -1, 64)
			row[9] = c.Category.String()
		case event.Chart != nil:
			row[4] = event.Chart.RuleID
			row[10] = event.Chart.Path
		case event.Error != nil:
			row[11] = string(event.Error.Code)
			row[12] = event.Error.Message
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
