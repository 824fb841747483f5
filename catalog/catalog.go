// Package catalog registers Color and Size variants under string keys and
// resolves "size:color" specs into pens.
//
// It is the extension point for new variants: register them once at startup,
// then refer to them by key from config files or flags.
//
//	cat := catalog.Default()
//	_ = cat.ProvideColor("blue", Blue{})
//	p, err := cat.Pen(catalog.Spec{Size: "big", Color: "blue"})
package catalog

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sghaida/pen/pen"
)

// Axis names the dimension a key belongs to.
type Axis string

const (
	AxisColor Axis = "color"
	AxisSize  Axis = "size"
)

var (
	// ErrEmptyKey is returned when a variant is registered under a blank key.
	ErrEmptyKey = errors.New("catalog: empty key")

	// ErrNilVariant is returned when a nil Color or Size is registered.
	ErrNilVariant = errors.New("catalog: nil variant")

	// ErrMalformedSpec is returned by ParseSpec for anything but "size:color".
	ErrMalformedSpec = errors.New("catalog: malformed pen spec")
)

// DuplicateKeyError is returned when a key is already registered on an axis.
type DuplicateKeyError struct {
	Axis Axis
	Key  string
}

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: catalog: duplicate color key "red"
	return "catalog: duplicate " + string(e.Axis) + " key " + strconv.Quote(e.Key)
}

// MissingVariantError is returned when a key is not registered on an axis.
type MissingVariantError struct {
	Axis Axis
	Key  string
}

// Error implements the error interface.
func (e MissingVariantError) Error() string {
	// Example: catalog: size "huge" not registered
	return "catalog: " + string(e.Axis) + " " + strconv.Quote(e.Key) + " not registered"
}

// Catalog is an in-memory set of named variants. It is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	colors map[string]pen.Color
	sizes  map[string]pen.Size
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		colors: map[string]pen.Color{},
		sizes:  map[string]pen.Size{},
	}
}

// Default returns a catalog holding the built-in variants.
func Default() *Catalog {
	c := New()
	c.MustProvideColor("red", pen.Red{})
	c.MustProvideColor("green", pen.Green{})
	c.MustProvideSize("small", pen.Small{})
	c.MustProvideSize("middle", pen.Middle{})
	c.MustProvideSize("big", pen.Big{})
	return c
}

func normalize(key string) string { return strings.ToLower(strings.TrimSpace(key)) }

// ProvideColor registers color under key.
func (c *Catalog) ProvideColor(key string, color pen.Color) error {
	if color == nil {
		return ErrNilVariant
	}
	return provide(&c.mu, c.colors, AxisColor, key, color)
}

// ProvideSize registers size under key.
func (c *Catalog) ProvideSize(key string, size pen.Size) error {
	if size == nil {
		return ErrNilVariant
	}
	return provide(&c.mu, c.sizes, AxisSize, key, size)
}

func provide[V any](mu *sync.RWMutex, items map[string]V, axis Axis, key string, v V) error {
	k := normalize(key)
	if k == "" {
		return ErrEmptyKey
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := items[k]; exists {
		return DuplicateKeyError{Axis: axis, Key: k}
	}
	items[k] = v
	return nil
}

// MustProvideColor is ProvideColor that panics on error.
func (c *Catalog) MustProvideColor(key string, color pen.Color) *Catalog {
	if err := c.ProvideColor(key, color); err != nil {
		panic(err)
	}
	return c
}

// MustProvideSize is ProvideSize that panics on error.
func (c *Catalog) MustProvideSize(key string, size pen.Size) *Catalog {
	if err := c.ProvideSize(key, size); err != nil {
		panic(err)
	}
	return c
}

// Color returns the color registered under key.
func (c *Catalog) Color(key string) (pen.Color, error) {
	return lookup(&c.mu, c.colors, AxisColor, key)
}

// Size returns the size registered under key.
func (c *Catalog) Size(key string) (pen.Size, error) {
	return lookup(&c.mu, c.sizes, AxisSize, key)
}

func lookup[V any](mu *sync.RWMutex, items map[string]V, axis Axis, key string) (V, error) {
	k := normalize(key)

	mu.RLock()
	v, ok := items[k]
	mu.RUnlock()

	if !ok {
		var zero V
		return zero, MissingVariantError{Axis: axis, Key: k}
	}
	return v, nil
}

// ColorKeys returns the registered color keys, sorted.
func (c *Catalog) ColorKeys() []string { return keys(&c.mu, c.colors) }

// SizeKeys returns the registered size keys, sorted.
func (c *Catalog) SizeKeys() []string { return keys(&c.mu, c.sizes) }

func keys[V any](mu *sync.RWMutex, items map[string]V) []string {
	mu.RLock()
	out := make([]string, 0, len(items))
	for k := range items {
		out = append(out, k)
	}
	mu.RUnlock()

	sort.Strings(out)
	return out
}
