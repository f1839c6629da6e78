// Package tree renders subtrees of a configuration tree as ordered,
// nestable maps suitable for JSON output.
package tree

import (
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// ValueKey is the key a node's own value is stored under when the node also
// has children. The '#' prefix cannot appear in a plain tree label, so it
// never collides with a child.
const ValueKey = "#value"

// Source is the subset of tree operations Dump needs. *augeas.Augeas
// satisfies it.
type Source interface {
	// Match returns the fully qualified paths matching a path expression.
	Match(path string) ([]string, error)

	// Get returns the value of the node matching path, with ok=false
	// when no node matches or the node has no value.
	Get(path string) (value string, ok bool, err error)
}

// Dump builds an ordered representation of every node matching the path
// expression. Each matched node becomes an entry keyed by its final path
// segment; a leaf maps to its value (or nil when it has none), an interior
// node maps to an ordered map of its children, with its own value under
// ValueKey when present.
func Dump(src Source, path string) (*orderedmap.OrderedMap, error) {
	matches, err := src.Match(path)
	if err != nil {
		return nil, err
	}

	result := orderedmap.New()
	for _, m := range matches {
		node, err := dumpNode(src, m)
		if err != nil {
			return nil, err
		}
		result.Set(Label(m), node)
	}
	return result, nil
}

// dumpNode renders the single node at path, which must be fully qualified.
func dumpNode(src Source, path string) (any, error) {
	value, hasValue, err := src.Get(path)
	if err != nil {
		return nil, err
	}

	children, err := src.Match(path + "/*")
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		if !hasValue {
			return nil, nil
		}
		return value, nil
	}

	node := orderedmap.New()
	if hasValue {
		node.Set(ValueKey, value)
	}
	for _, c := range children {
		child, err := dumpNode(src, c)
		if err != nil {
			return nil, err
		}
		node.Set(Label(c), child)
	}
	return node, nil
}

// Label returns the final segment of a fully qualified path, keeping any
// positional qualifier so siblings with the same label stay distinct.
func Label(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Flatten returns one "path = value" line per node under the path
// expression, in tree order. Nodes without a value render as "path".
func Flatten(src Source, path string) ([]string, error) {
	matches, err := src.Match(path)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, m := range matches {
		value, ok, err := src.Get(m)
		if err != nil {
			return nil, err
		}
		if ok {
			lines = append(lines, fmt.Sprintf("%s = %s", m, value))
		} else {
			lines = append(lines, m)
		}

		sub, err := Flatten(src, m+"/*")
		if err != nil {
			return nil, err
		}
		lines = append(lines, sub...)
	}
	return lines, nil
}
