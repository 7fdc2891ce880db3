package document

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocombo/internal/recipe"
	"gopkg.in/yaml.v3"
)

// LoadFactors reads a factor document from a YAML file
func LoadFactors(path string) ([]recipe.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	recipes, err := ParseFactors(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recipes, nil
}

// ParseFactors decodes a factor document. Top-level keys are recipe names;
// each recipe maps group names to a factor or to nested subgroup factors.
//
//	LRFD2:
//	  Dead: 1.2
//	  Live: {Perm: 1.6, Construction: 1.0, Pattern: 1.6}
func ParseFactors(data []byte) ([]recipe.Recipe, error) {
	root, err := parseRoot(data)
	if err != nil || root == nil {
		return nil, err
	}

	var recipes []recipe.Recipe
	seen := make(map[string]bool)
	err = pairs(root, func(k, v *yaml.Node) error {
		if seen[k.Value] {
			return fmt.Errorf("line %d: recipe %q defined more than once", k.Line, k.Value)
		}
		seen[k.Value] = true

		if isNull(v) {
			recipes = append(recipes, recipe.New(k.Value))
			return nil
		}
		if v.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: recipe %q must map groups to factors", v.Line, k.Value)
		}
		entries, err := factorEntries(k.Value, v)
		if err != nil {
			return err
		}
		recipes = append(recipes, recipe.Flatten(k.Value, entries))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func factorEntries(recipeName string, n *yaml.Node) ([]recipe.Entry, error) {
	var entries []recipe.Entry
	err := pairs(n, func(k, v *yaml.Node) error {
		switch v.Kind {
		case yaml.ScalarNode:
			var f float64
			if err := v.Decode(&f); err != nil || isNull(v) {
				return fmt.Errorf("line %d: recipe %q: factor for %q is not a number: %q", v.Line, recipeName, k.Value, v.Value)
			}
			entries = append(entries, recipe.Leaf(k.Value, f))
		case yaml.MappingNode:
			sub, err := factorEntries(recipeName, v)
			if err != nil {
				return err
			}
			entries = append(entries, recipe.Nested(k.Value, sub...))
		default:
			return fmt.Errorf("line %d: recipe %q: %q must be a factor or a mapping", v.Line, recipeName, k.Value)
		}
		return nil
	})
	return entries, err
}
