package pen

import (
	"errors"
	"io"
	"os"
	"strconv"
)

// ErrInvalidArgument is matched (via errors.Is) by every InvalidArgumentError.
var ErrInvalidArgument = errors.New("pen: invalid argument")

// InvalidArgumentError is returned by New when a required argument is nil.
type InvalidArgumentError struct{ Arg string }

// Error implements the error interface.
func (e InvalidArgumentError) Error() string {
	// Example: pen: invalid argument "color" (nil)
	return ErrInvalidArgument.Error() + " " + strconv.Quote(e.Arg) + " (nil)"
}

// Is lets errors.Is(err, ErrInvalidArgument) match.
func (e InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// Pen draws with exactly one Size and one Color.
//
// Both are fixed at construction; a Pen has no other state, so Draw may be
// called any number of times with the same result.
type Pen struct {
	size  Size
	color Color
	out   io.Writer
}

// Option customizes a Pen at construction.
type Option func(*Pen)

// WithOutput makes Draw write to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Pen) { p.out = w }
}

// New composes a Pen from a size and a color. Both are required; a nil
// argument returns an InvalidArgumentError.
func New(size Size, color Color, opts ...Option) (*Pen, error) {
	if size == nil {
		return nil, InvalidArgumentError{Arg: "size"}
	}
	if color == nil {
		return nil, InvalidArgumentError{Arg: "color"}
	}

	p := &Pen{size: size, color: color, out: os.Stdout}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.out == nil {
		return nil, InvalidArgumentError{Arg: "output"}
	}
	return p, nil
}

// MustNew is New that panics on error.
// Useful in examples/tests where the variants are known to be non-nil.
func MustNew(size Size, color Color, opts ...Option) *Pen {
	p, err := New(size, color, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Size returns the size this pen was built with.
func (p *Pen) Size() Size { return p.size }

// Color returns the color this pen was built with.
func (p *Pen) Color() Color { return p.color }

// Line returns the text Draw emits, without the trailing newline.
func (p *Pen) Line() string {
	return "使用" + p.color.Color() + p.size.Size() + "笔绘画"
}

// Draw writes Line followed by a newline to the pen's output.
// Write errors are dropped.
func (p *Pen) Draw() {
	_, _ = io.WriteString(p.out, p.Line()+"\n")
}
