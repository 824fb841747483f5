// Package pen is the root of a small example of composition over inheritance:
// a pen varies by color and by size, and instead of one type per combination
// it holds one of each.
//
// See subpackages:
//   - pen: Color and Size capabilities, their built-in variants, and Pen
//   - catalog: named variants and "size:color" pen specs
//   - internal/config: YAML/env configuration for the command
//   - cmd/pen: the command that draws the configured pens
package pen
