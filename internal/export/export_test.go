package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gocombo/internal/combo"
	"github.com/alexiusacademia/gocombo/internal/loadgroup"
	"github.com/alexiusacademia/gocombo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exampleTable(t *testing.T, opts Options) *Table {
	t.Helper()
	m := testutil.ExampleModel(t)
	e := combo.New(m)

	var rows []combo.Row
	for _, r := range testutil.ExampleRecipes()[:2] {
		got, err := e.Expand(r)
		require.NoError(t, err)
		rows = append(rows, got...)
	}
	return NewTable(m, rows, opts)
}

func TestNewTable_ColumnsFollowModelOrder(t *testing.T) {
	tbl := exampleTable(t, Options{})

	assert.Equal(t, []loadgroup.LoadCase{"DL", "SDL", "LL", "LL_Construction", "LL_Pattern"}, tbl.Cases)
	assert.Equal(t, []string{"Recipe", "Combination", "DL", "SDL", "LL", "LL_Construction", "LL_Pattern"}, tbl.Header())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exampleTable(t, Options{})))

	want := strings.Join([]string{
		"Recipe,Combination,DL,SDL,LL,LL_Construction,LL_Pattern",
		"LRFD1,LRFD1,1.4,1.4,0,0,0",
		"LRFD2,LRFD2-Perm,1.2,1.2,1.6,0,0",
		"LRFD2,LRFD2-Construction,1.2,1.2,0,1,0",
		"LRFD2,LRFD2-Pattern,1.2,1.2,0,0,1.6",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_Blank(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exampleTable(t, Options{Blank: true})))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "LRFD1,LRFD1,1.4,1.4,,,", lines[1])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, exampleTable(t, Options{})))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Recipe", "Combination", "DL", "SDL", "LL", "LL_Construction", "LL_Pattern"}, rows[0])
	assert.Equal(t, []string{"LRFD2", "LRFD2-Pattern", "1.2", "1.2", "0", "0", "1.6"}, rows[4])
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name, path string
		want       Format
		wantErr    bool
	}{
		{"", "out.csv", CSV, false},
		{"", "out.XLSX", XLSX, false},
		{"", "", CSV, false},
		{"xlsx", "out.csv", XLSX, false},
		{"CSV", "", CSV, false},
		{"json", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name+"|"+tt.path, func(t *testing.T) {
			got, err := ParseFormat(tt.name, tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "combinations.csv")
	require.NoError(t, Write(path, CSV, exampleTable(t, Options{})))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Recipe,Combination,DL"))
}
