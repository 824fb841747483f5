package catalog

import (
	"fmt"
	"strings"

	"github.com/sghaida/pen/pen"
)

// Spec names a pen by its catalog keys.
type Spec struct {
	Size  string `yaml:"size"`
	Color string `yaml:"color"`
}

// String renders the spec in the form ParseSpec accepts.
func (s Spec) String() string { return s.Size + ":" + s.Color }

// ParseSpec parses "size:color", e.g. "small:red".
func ParseSpec(s string) (Spec, error) {
	size, color, ok := strings.Cut(s, ":")
	size, color = normalize(size), normalize(color)
	if !ok || size == "" || color == "" || strings.Contains(color, ":") {
		return Spec{}, fmt.Errorf("%w: %q (want size:color)", ErrMalformedSpec, s)
	}
	return Spec{Size: size, Color: color}, nil
}

// Pen resolves both keys of spec and composes a pen from them.
func (c *Catalog) Pen(spec Spec, opts ...pen.Option) (*pen.Pen, error) {
	size, err := c.Size(spec.Size)
	if err != nil {
		return nil, err
	}
	color, err := c.Color(spec.Color)
	if err != nil {
		return nil, err
	}
	return pen.New(size, color, opts...)
}

// Pens resolves specs in order and stops at the first error.
func (c *Catalog) Pens(specs []Spec, opts ...pen.Option) ([]*pen.Pen, error) {
	out := make([]*pen.Pen, 0, len(specs))
	for _, spec := range specs {
		p, err := c.Pen(spec, opts...)
		if err != nil {
			return nil, fmt.Errorf("pen %s: %w", spec, err)
		}
		out = append(out, p)
	}
	return out, nil
}
