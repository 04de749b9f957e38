package chart

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ped-tools/ped-go/pkg/ped"
)

// DefaultFileName returns the conventional chart file name for a state/group
// pair, e.g. "piping_group1_gas.svg".
func DefaultFileName(state ped.FluidState, group ped.FluidGroup) string {
	return fmt.Sprintf("piping_group%d_%s.svg", uint8(group), state)
}

// RenderFile renders the chart into path, creating parent directories as
// needed. The file is only written once rendering succeeded.
func RenderFile(r Renderer, path string, spec ped.ChartSpec, result ped.Result) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, spec, result); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create chart directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write chart file: %w", err)
	}
	return nil
}
