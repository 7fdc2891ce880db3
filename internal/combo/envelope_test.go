package combo

import (
	"testing"

	"github.com/alexiusacademia/gocombo/internal/loadgroup"
	"github.com/alexiusacademia/gocombo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoverning(t *testing.T) {
	m := testutil.ExampleModel(t)

	var rows []Row
	for _, r := range testutil.ExampleRecipes()[:3] {
		rows = append(rows, expand(t, m, r)...)
	}

	effects := map[loadgroup.LoadCase]float64{
		"DL":                50,
		"SDL":               10,
		"LL":                30,
		"LL_Construction":   40,
		"LL_Pattern":        35,
		"WL_Frame_North":    -20,
		"WL_Cladding_North": -5,
	}
	env, ok := Governing(rows, effects)
	require.True(t, ok)
	require.Len(t, env.Values, len(rows))

	// 1.2*60 + 1.6*35 = 128
	assert.Equal(t, "LRFD2-Pattern", env.MaxRow.Name)
	assert.InDelta(t, 128.0, env.Max, 1e-9)

	// 1.2*60 + 1.0*30 - 25 = 77
	assert.Equal(t, "LRFD4-Perm-North", env.MinRow.Name)
	assert.InDelta(t, 77.0, env.Min, 1e-9)

	assert.Equal(t, env.MaxRow, rows[env.MaxIndex])
	assert.Equal(t, env.MinRow, rows[env.MinIndex])
}

func TestGoverning_IndexesDistinguishEqualNames(t *testing.T) {
	rows := []Row{
		{Recipe: "A", Name: "A-B", Factors: Combination{"DL": 1.0, "LB": 1.0}},
		{Recipe: "A", Name: "A-C", Factors: Combination{"DL": 1.0, "LC": 1.0}},
		{Recipe: "A-B", Name: "A-B", Factors: Combination{"DL": 2.0}},
	}
	env, ok := Governing(rows, map[loadgroup.LoadCase]float64{"DL": 10, "LB": 5})
	require.True(t, ok)
	assert.Equal(t, 2, env.MaxIndex)
	assert.Equal(t, 1, env.MinIndex)

	env, ok = Governing(rows[:1], map[loadgroup.LoadCase]float64{"DL": 10})
	require.True(t, ok)
	assert.Equal(t, 0, env.MaxIndex)
	assert.Equal(t, 0, env.MinIndex)
}

func TestGoverning_Empty(t *testing.T) {
	_, ok := Governing(nil, nil)
	assert.False(t, ok)
}

func TestCombination_Apply(t *testing.T) {
	c := Combination{"DL": 1.2, "LL": 1.6}
	assert.InDelta(t, 1.2*50+1.6*30, c.Apply(map[loadgroup.LoadCase]float64{"DL": 50, "LL": 30, "W": 99}), 1e-9)
	assert.Zero(t, c.Apply(nil))
}
