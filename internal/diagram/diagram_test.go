package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/gocombo/internal/combo"
	"github.com/alexiusacademia/gocombo/internal/export"
	"github.com/alexiusacademia/gocombo/internal/recipe"
	"github.com/alexiusacademia/gocombo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lrfd2Table(t *testing.T) *export.Table {
	t.Helper()
	m := testutil.ExampleModel(t)
	rows, err := combo.New(m).Expand(recipe.New("LRFD2").
		Set("Dead", 1.2).
		Set("Live.Perm", 1.6).
		Set("Live.Pattern", 1.6))
	require.NoError(t, err)
	return export.NewTable(m, rows, export.Options{})
}

func TestDrawASCIIFactorMatrix(t *testing.T) {
	out := DrawASCIIFactorMatrix(lrfd2Table(t))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "Combination")
	assert.Contains(t, lines[1], "LL_Pattern")
	assert.Contains(t, lines[3], "LRFD2-Perm")
	assert.Contains(t, lines[3], "·")
	assert.Contains(t, lines[4], "1.6")

	// every line has the same display width
	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l), l)
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("GOVERNING", []string{"LRFD2-Pattern", "Mu = 128.00"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 6)
	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l), l)
	}
}

func TestExportFactorChart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "charts", "factors.png")

	require.NoError(t, ExportFactorChart(lrfd2Table(t), path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportFactorChart_Empty(t *testing.T) {
	err := ExportFactorChart(&export.Table{}, filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}
