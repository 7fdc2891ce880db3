// Package testutil holds the example group and factor documents shared by
// package tests.
package testutil

import (
	"testing"

	"github.com/alexiusacademia/gocombo/internal/loadgroup"
	"github.com/alexiusacademia/gocombo/internal/recipe"
	"github.com/stretchr/testify/require"
)

// ExampleGroups is the example group document: Dead is a flat list, Live,
// Wind and Seismic have alternative subgroups and Lateral refers to Wind
// and Seismic.
func ExampleGroups() loadgroup.Document {
	g := func(name string, def loadgroup.Def) loadgroup.Group {
		return loadgroup.Group{Name: name, Def: def}
	}
	return loadgroup.Document{
		g("Dead", loadgroup.CasesDef("DL", "SDL")),
		g("Live", loadgroup.GroupsDef(
			g("Perm", loadgroup.CasesDef("LL")),
			g("Construction", loadgroup.CasesDef("LL_Construction")),
			g("Pattern", loadgroup.CasesDef("LL_Pattern")),
		)),
		g("Wind", loadgroup.GroupsDef(
			g("North", loadgroup.CasesDef("WL_Frame_North", "WL_Cladding_North")),
			g("West", loadgroup.CasesDef("WL_Frame_West", "WL_Cladding_West")),
		)),
		g("Seismic", loadgroup.GroupsDef(
			g("North", loadgroup.CasesDef("EQ_North")),
			g("West", loadgroup.CasesDef("EQ_West")),
		)),
		g("Lateral", loadgroup.GroupsDef(
			g("Wind", loadgroup.CasesDef("Wind")),
			g("Seismic", loadgroup.CasesDef("Seismic")),
		)),
	}
}

// ExampleModel builds ExampleGroups, failing the test on error
func ExampleModel(t testing.TB) *loadgroup.Model {
	t.Helper()
	m, err := loadgroup.Build(ExampleGroups())
	require.NoError(t, err)
	return m
}

// ExampleRecipes returns the example factor recipes, including an inert
// reference to a Soil group the hierarchy does not define.
func ExampleRecipes() []recipe.Recipe {
	return []recipe.Recipe{
		recipe.New("LRFD1").Set("Dead", 1.4),
		recipe.New("LRFD2").
			Set("Dead", 1.2).
			Set("Live.Perm", 1.6).
			Set("Live.Construction", 1.0).
			Set("Live.Pattern", 1.6),
		recipe.New("LRFD4").
			Set("Dead", 1.2).
			Set("Live.Perm", 1.0).
			Set("Live.Pattern", 1.0).
			Set("Wind", 1.0),
		recipe.New("Lateral-Envelope").
			Set("Lateral.Wind", 1.0).
			Set("Lateral.Seismic", 1.0),
		recipe.New("Soil").
			Set("Dead", 1.0).
			Set("Soil", 1.6),
	}
}
