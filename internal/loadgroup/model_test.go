package loadgroup_test

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gocombo/internal/loadgroup"
	"github.com/alexiusacademia/gocombo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func group(name string, def loadgroup.Def) loadgroup.Group {
	return loadgroup.Group{Name: name, Def: def}
}

func TestBuild_Example(t *testing.T) {
	m := testutil.ExampleModel(t)

	assert.Equal(t, loadgroup.RootName, m.Root().Name)
	assert.Equal(t, loadgroup.Additive, m.Root().Kind)
	assert.Equal(t, []string{"Dead", "Live", "Wind", "Seismic", "Lateral"}, m.Groups())

	dead, err := m.Resolve("Dead")
	require.NoError(t, err)
	assert.Equal(t, loadgroup.Additive, dead.Kind)
	assert.Equal(t, []loadgroup.LoadCase{"DL", "SDL"}, m.LeavesUnder(dead))

	live, err := m.Resolve("Live")
	require.NoError(t, err)
	assert.Equal(t, loadgroup.Alternative, live.Kind)

	var names []string
	for _, e := range m.Alternatives(live) {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Perm", "Construction", "Pattern"}, names)
	assert.Nil(t, m.Alternatives(dead))
}

func TestBuild_ReferencesShareNodes(t *testing.T) {
	m := testutil.ExampleModel(t)

	wind, err := m.Resolve("Wind")
	require.NoError(t, err)
	viaLateral, err := m.Resolve("Lateral", "Wind", "Wind")
	require.NoError(t, err)
	assert.Same(t, wind, viaLateral)

	north, err := m.Resolve("Lateral", "Wind", "Wind", "North")
	require.NoError(t, err)
	assert.Equal(t, []loadgroup.LoadCase{"WL_Frame_North", "WL_Cladding_North"}, m.LeavesUnder(north))
}

func TestBuild_ScalarReference(t *testing.T) {
	m, err := loadgroup.Build(loadgroup.Document{
		group("Wind", loadgroup.GroupsDef(
			group("North", loadgroup.CasesDef("WN")),
			group("West", loadgroup.CasesDef("WW")),
		)),
		group("Lateral", loadgroup.GroupsDef(
			group("Wind", loadgroup.RefDef("Wind")),
		)),
		group("Alias", loadgroup.RefDef("Wind")),
	})
	require.NoError(t, err)

	wind, err := m.Resolve("Wind")
	require.NoError(t, err)
	lateralWind, err := m.Resolve("Lateral", "Wind")
	require.NoError(t, err)
	alias, err := m.Resolve("Alias")
	require.NoError(t, err)

	assert.Same(t, wind, lateralWind)
	assert.Same(t, wind, alias)
}

func TestResolve(t *testing.T) {
	m := testutil.ExampleModel(t)

	t.Run("leaf", func(t *testing.T) {
		n, err := m.Resolve("Live", "Perm", "LL")
		require.NoError(t, err)
		c, ok := n.Case()
		require.True(t, ok)
		assert.Equal(t, loadgroup.LoadCase("LL"), c)
	})

	t.Run("missing segment", func(t *testing.T) {
		_, err := m.Resolve("Live", "Roof")
		require.Error(t, err)
		assert.ErrorIs(t, err, loadgroup.ErrPathNotFound)

		var pe *loadgroup.PathError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "Roof", pe.Segment)
		assert.Contains(t, err.Error(), "Live.Roof")
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := m.Resolve()
		assert.ErrorIs(t, err, loadgroup.ErrPathNotFound)
	})
}

func TestLoadCases(t *testing.T) {
	m := testutil.ExampleModel(t)

	want := []loadgroup.LoadCase{
		"DL", "SDL",
		"LL", "LL_Construction", "LL_Pattern",
		"WL_Frame_North", "WL_Cladding_North", "WL_Frame_West", "WL_Cladding_West",
		"EQ_North", "EQ_West",
	}
	assert.Equal(t, want, m.LoadCases())
	assert.True(t, m.Contains("EQ_West"))
	assert.False(t, m.Contains("Soil"))
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  loadgroup.Document
		want error
		msg  string
	}{
		{
			name: "self reference",
			doc:  loadgroup.Document{group("Dead", loadgroup.CasesDef("Dead"))},
			want: loadgroup.ErrCyclicReference,
			msg:  "Dead -> Dead",
		},
		{
			name: "indirect cycle",
			doc: loadgroup.Document{
				group("A", loadgroup.GroupsDef(group("x", loadgroup.CasesDef("B")))),
				group("B", loadgroup.RefDef("C")),
				group("C", loadgroup.CasesDef("A")),
			},
			want: loadgroup.ErrCyclicReference,
			msg:  "A -> B -> C -> A",
		},
		{
			name: "case in two alternatives",
			doc: loadgroup.Document{
				group("Live", loadgroup.GroupsDef(
					group("Perm", loadgroup.CasesDef("LL")),
					group("Pattern", loadgroup.CasesDef("LL", "LL_Pattern")),
				)),
			},
			want: loadgroup.ErrDuplicateLoadCase,
			msg:  `"LL" is in both "Perm" and "Pattern"`,
		},
		{
			name: "shared group under two alternatives",
			doc: loadgroup.Document{
				group("Wind", loadgroup.CasesDef("WL")),
				group("Lateral", loadgroup.GroupsDef(
					group("A", loadgroup.CasesDef("Wind")),
					group("B", loadgroup.RefDef("Wind")),
				)),
			},
			want: loadgroup.ErrDuplicateLoadCase,
		},
		{
			name: "case under two alternative groups",
			doc: loadgroup.Document{
				group("Live", loadgroup.GroupsDef(
					group("Perm", loadgroup.CasesDef("X")),
					group("Roof", loadgroup.CasesDef("LR")),
				)),
				group("Wind", loadgroup.GroupsDef(
					group("North", loadgroup.CasesDef("X")),
					group("West", loadgroup.CasesDef("WW")),
				)),
			},
			want: loadgroup.ErrDuplicateLoadCase,
			msg:  `"X" is under both Live.Perm and Wind.North`,
		},
		{
			name: "case repeated under another alternative group",
			doc: loadgroup.Document{
				group("Wind", loadgroup.GroupsDef(
					group("North", loadgroup.CasesDef("WN")),
					group("West", loadgroup.CasesDef("WW")),
				)),
				group("Lateral", loadgroup.GroupsDef(
					group("Extra", loadgroup.CasesDef("WN")),
				)),
			},
			want: loadgroup.ErrDuplicateLoadCase,
		},
		{
			name: "case listed twice",
			doc:  loadgroup.Document{group("Dead", loadgroup.CasesDef("DL", "DL"))},
			want: loadgroup.ErrDuplicateLoadCase,
		},
		{
			name: "unknown reference",
			doc:  loadgroup.Document{group("Lateral", loadgroup.RefDef("Wind"))},
			want: loadgroup.ErrPathNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadgroup.Build(tt.doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestBuild_InvalidNames(t *testing.T) {
	_, err := loadgroup.Build(loadgroup.Document{group("", loadgroup.CasesDef("DL"))})
	assert.Error(t, err)

	_, err = loadgroup.Build(loadgroup.Document{
		group("Dead", loadgroup.CasesDef("DL")),
		group("Dead", loadgroup.CasesDef("SDL")),
	})
	assert.ErrorContains(t, err, "defined more than once")

	_, err = loadgroup.Build(loadgroup.Document{group("Dead", loadgroup.CasesDef("DL", " "))})
	assert.ErrorContains(t, err, "empty load case name")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "leaf", loadgroup.Leaf.String())
	assert.Equal(t, "additive", loadgroup.Additive.String())
	assert.Equal(t, "alternative", loadgroup.Alternative.String())
	assert.Equal(t, "unknown", loadgroup.Kind(42).String())
}
