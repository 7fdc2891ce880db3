// Package document reads the group and factor YAML documents.
//
// Both documents are decoded into yaml.Node trees instead of maps so the
// order of groups, subgroups and recipes in the file is the order of the
// generated combinations.
package document

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseRoot decodes data and returns the top-level node with the document
// wrapper removed. An empty document returns nil.
func parseRoot(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, nil
		}
		root = doc.Content[0]
	}
	root = resolveAlias(root)
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping at the top level", root.Line)
	}
	return root, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// pairs iterates the key/value pairs of a mapping node
func pairs(n *yaml.Node, fn func(k, v *yaml.Node) error) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := fn(n.Content[i], resolveAlias(n.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}
