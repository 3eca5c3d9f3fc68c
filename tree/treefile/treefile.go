// Package treefile loads tree definitions from TOML files.
//
// A definition names a value kind and describes the tree either by insertion
// order or by explicit shape:
//
//	name = "sample"
//	kind = "int"                     # "int" (default) or "string"
//	values = [5, 3, 7, 1, 4, 6, 8]   # inserted in binary-search-tree order
//
//	name = "by-shape"
//	[root]
//	value = 5
//	[root.left]
//	value = 3
//
// Shapes are taken as written, so a file may describe a tree that breaks the
// binary-search-tree property. String trees may set collation to a BCP 47
// language tag to order values by that locale.
package treefile

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joshuapare/treekit/tree"
)

// Kind is the value type stored in a defined tree.
type Kind string

const (
	KindInt    Kind = "int"
	KindString Kind = "string"
)

// Definition is a decoded tree definition file.
type Definition struct {
	Name      string         `toml:"name"`
	Kind      Kind           `toml:"kind"`
	Collation string         `toml:"collation"`
	Values    toml.Primitive `toml:"values"`
	Root      toml.Primitive `toml:"root"`

	source string
	md     toml.MetaData
}

// shape is one node of an explicitly shaped definition.
type shape[T any] struct {
	Value *T        `toml:"value"`
	Left  *shape[T] `toml:"left"`
	Right *shape[T] `toml:"right"`
}

// Load reads and validates the definition at path.
func Load(path string) (*Definition, error) {
	var def Definition
	md, err := toml.DecodeFile(path, &def)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %w", path, tree.ErrInvalid, err)
	}
	def.source = path
	def.md = md

	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Parse decodes and validates a definition held in memory.
func Parse(data string) (*Definition, error) {
	var def Definition
	md, err := toml.Decode(data, &def)
	if err != nil {
		return nil, fmt.Errorf("parse definition: %w: %w", tree.ErrInvalid, err)
	}
	def.source = "<inline>"
	def.md = md

	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Source returns the path the definition was loaded from.
func (d *Definition) Source() string { return d.source }

// Shaped reports whether the definition spells out the tree node by node.
func (d *Definition) Shaped() bool { return d.md.IsDefined("root") }

func (d *Definition) validate() error {
	if d.Kind == "" {
		d.Kind = KindInt
	}
	d.Kind = Kind(strings.ToLower(string(d.Kind)))

	switch d.Kind {
	case KindInt, KindString:
	default:
		return d.errorf(tree.ErrUnsupported, "kind %q", d.Kind)
	}

	hasValues := d.md.IsDefined("values")
	hasRoot := d.md.IsDefined("root")
	switch {
	case hasValues && hasRoot:
		return d.errorf(tree.ErrInvalid, "both values and root are set")
	case !hasValues && !hasRoot:
		return d.errorf(tree.ErrInvalid, "one of values or root is required")
	}

	if d.Collation != "" && d.Kind != KindString {
		return d.errorf(tree.ErrInvalid, "collation applies to string trees only")
	}
	return nil
}

// errorf builds an error wrapping sentinel and naming the definition source.
func (d *Definition) errorf(sentinel *tree.Error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", d.source, fmt.Sprintf(format, args...), sentinel)
}
