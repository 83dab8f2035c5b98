package category

import (
	_ "embed"
	"fmt"

	"github.com/Veraticus/pennywise/internal/common"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDefinition []byte

// Default returns the built-in hierarchy:
//
//	expense[food[meal, snack, drink], transportation[bus, railway]], income[salary, bonus]
func Default() *Tree {
	tree, err := Parse(defaultDefinition)
	if err != nil {
		panic(fmt.Sprintf("built-in category hierarchy is invalid: %v", err))
	}
	return tree
}

// Load reads a hierarchy definition file. See Parse for the accepted shapes.
func Load(fs afero.Fs, path string) (*Tree, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category file: %w", err)
	}

	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("category file %s: %w", path, err)
	}
	return tree, nil
}

// Parse builds a tree from a YAML document. Two shapes are accepted: a list of
// {name, children} mappings, or the flat form where a name immediately
// followed by a nested list owns that list as its children.
func Parse(data []byte) (*Tree, error) {
	var raw []any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedHierarchy, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no categories defined", common.ErrMalformedHierarchy)
	}

	if _, ok := raw[0].(map[string]any); !ok {
		return FromFlat(raw)
	}

	var defs []Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedHierarchy, err)
	}
	return New(defs)
}

// FromFlat builds a tree from the flat nested-list encoding, for example
//
//	[]any{"income", []any{"salary", "bonus"}}
//
// A nested list must directly follow the name that owns it, and a name may own
// at most one nested list.
func FromFlat(items []any) (*Tree, error) {
	defs, err := flatDefinitions(items)
	if err != nil {
		return nil, err
	}
	return New(defs)
}

func flatDefinitions(items []any) ([]Definition, error) {
	var (
		defs     []Definition
		hasBlock bool
	)

	for i, item := range items {
		var block []any
		switch v := item.(type) {
		case string:
			defs = append(defs, Definition{Name: v})
			hasBlock = false
			continue
		case []any:
			block = v
		case []string:
			block = make([]any, len(v))
			for j, s := range v {
				block[j] = s
			}
		default:
			return nil, fmt.Errorf("%w: unexpected element %v (%T) at position %d", common.ErrMalformedHierarchy, item, item, i)
		}

		if len(defs) == 0 {
			return nil, fmt.Errorf("%w: nested list at position %d has no parent name", common.ErrMalformedHierarchy, i)
		}
		if hasBlock {
			return nil, fmt.Errorf("%w: %q is followed by more than one nested list", common.ErrMalformedHierarchy, defs[len(defs)-1].Name)
		}

		children, err := flatDefinitions(block)
		if err != nil {
			return nil, err
		}
		defs[len(defs)-1].Children = children
		hasBlock = true
	}

	return defs, nil
}
