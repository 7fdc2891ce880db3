package document

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocombo/internal/loadgroup"
	"gopkg.in/yaml.v3"
)

// LoadGroups reads a group document from a YAML file
func LoadGroups(path string) (loadgroup.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseGroups(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ParseGroups decodes a group document. A key's value is either a list of
// load cases, a mapping of subgroups or the name of another top-level group.
//
//	Dead: [DL, SDL]
//	Live:
//	  Perm: [LL]
//	  Pattern: [LL_Pattern]
//	Lateral:
//	  Wind: [Wind]
func ParseGroups(data []byte) (loadgroup.Document, error) {
	root, err := parseRoot(data)
	if err != nil || root == nil {
		return nil, err
	}

	var doc loadgroup.Document
	err = pairs(root, func(k, v *yaml.Node) error {
		def, err := groupDef(k.Value, v)
		if err != nil {
			return err
		}
		doc = append(doc, loadgroup.Group{Name: k.Value, Def: def})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func groupDef(name string, n *yaml.Node) (loadgroup.Def, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if isNull(n) {
			return loadgroup.CasesDef(), nil
		}
		if n.ShortTag() != "!!str" {
			return loadgroup.Def{}, fmt.Errorf("line %d: group %q: expected a list, a mapping or a group name, got %q", n.Line, name, n.Value)
		}
		return loadgroup.RefDef(n.Value), nil

	case yaml.SequenceNode:
		cases := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode || isNull(item) {
				return loadgroup.Def{}, fmt.Errorf("line %d: group %q: load cases must be plain names", item.Line, name)
			}
			cases = append(cases, item.Value)
		}
		return loadgroup.CasesDef(cases...), nil

	case yaml.MappingNode:
		groups := []loadgroup.Group{}
		err := pairs(n, func(k, v *yaml.Node) error {
			def, err := groupDef(k.Value, v)
			if err != nil {
				return fmt.Errorf("group %q: %w", name, err)
			}
			groups = append(groups, loadgroup.Group{Name: k.Value, Def: def})
			return nil
		})
		if err != nil {
			return loadgroup.Def{}, err
		}
		return loadgroup.GroupsDef(groups...), nil

	default:
		return loadgroup.Def{}, fmt.Errorf("line %d: group %q: unsupported value", n.Line, name)
	}
}
