package interactive

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ped-tools/ped-go/pkg/chart"
	"github.com/ped-tools/ped-go/pkg/ped/rules"
	"github.com/ped-tools/ped-go/pkg/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer, string) {
	t.Helper()
	svc, err := service.New(service.Config{
		Registry: rules.NewDefaultRegistry(),
		Renderer: chart.NewSVGRenderer(chart.DefaultOptions()),
	})
	require.NoError(t, err)

	dir := t.TempDir()
	var out bytes.Buffer
	return NewWithWriter(svc, dir, &out), &out, dir
}

func TestShell_Classify(t *testing.T) {
	sh, out, _ := newTestShell(t)

	assert.True(t, sh.Exec(context.Background(), "classify gas 1 80 90"))
	assert.Contains(t, out.String(), "PS = 80 bar, DN = 90 mm → PED Category: III")

	out.Reset()
	assert.True(t, sh.Exec(context.Background(), "c liquid 2 5 40"))
	assert.Contains(t, out.String(), "PED Category: I\n")

	out.Reset()
	sh.Exec(context.Background(), "last")
	assert.Contains(t, out.String(), "[LIQ-2] liquid group 2")
}

func TestShell_InvalidInput(t *testing.T) {
	sh, out, _ := newTestShell(t)
	ctx := context.Background()

	tests := []struct {
		line string
		want string
	}{
		{"classify vapor 1 10 10", "Invalid fluid state: vapor"},
		{"classify gas 3 10 10", "Invalid fluid group: 3"},
		{"classify gas x 10 10", "Invalid fluid group: x"},
		{"classify gas 1 abc 10", "Invalid PS: abc"},
		{"classify gas 1 10 abc", "Invalid DN: abc"},
		{"classify gas 1 -5 10", "Error: invalid input"},
		{"classify gas 1", "Usage: classify"},
		{"frobnicate", "Unknown command: frobnicate"},
	}

	for _, tt := range tests {
		out.Reset()
		assert.True(t, sh.Exec(ctx, tt.line), tt.line)
		assert.Contains(t, out.String(), tt.want, tt.line)
	}
	assert.Nil(t, sh.last, "rejected input must not become the last result")
}

func TestShell_Chart(t *testing.T) {
	sh, out, dir := newTestShell(t)
	ctx := context.Background()

	sh.Exec(ctx, "chart")
	assert.Contains(t, out.String(), "Nothing to draw yet")

	sh.Exec(ctx, "classify gas 1 135 50")
	out.Reset()
	sh.Exec(ctx, "chart")
	want := filepath.Join(dir, "piping_group1_gas.svg")
	assert.Contains(t, out.String(), "Chart written to "+want)
	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Operating Point: III")

	custom := filepath.Join(dir, "sub", "custom.svg")
	out.Reset()
	sh.Exec(ctx, "chart "+custom)
	assert.FileExists(t, custom)
}

func TestShell_MiscCommands(t *testing.T) {
	sh, out, _ := newTestShell(t)
	ctx := context.Background()

	assert.True(t, sh.Exec(ctx, ""))
	assert.True(t, sh.Exec(ctx, "# comment"))
	assert.Empty(t, out.String())

	sh.Exec(ctx, "rules")
	for _, id := range []string{"GAS-1", "GAS-2", "LIQ-1", "LIQ-2"} {
		assert.Contains(t, out.String(), id)
	}

	out.Reset()
	sh.Exec(ctx, "help")
	assert.Contains(t, out.String(), "classify <state> <group> <ps> <dn>")

	assert.False(t, sh.Exec(ctx, "quit"))
	assert.False(t, sh.Exec(ctx, "EXIT"))
}
