package pen_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sghaida/pen/pen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Blue and Tiny exist only in tests: they prove new variants compose with Pen
// without any change to the pen package.
type Blue struct{}

func (Blue) Color() string { return "蓝色" }

type Tiny struct{}

func (Tiny) Size() string { return "极小" }

func newBufferedPen(t *testing.T, size pen.Size, color pen.Color) (*pen.Pen, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	p, err := pen.New(size, color, pen.WithOutput(&buf))
	require.NoError(t, err)
	require.NotNil(t, p)
	return p, &buf
}

//
// -----------------------------------------------------------------------------
// Variants
// -----------------------------------------------------------------------------

func TestVariantLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "红色", pen.Red{}.Color())
	assert.Equal(t, "绿色", pen.Green{}.Color())

	assert.Equal(t, "小", pen.Small{}.Size())
	assert.Equal(t, "中", pen.Middle{}.Size())
	assert.Equal(t, "大", pen.Big{}.Size())
}

//
// -----------------------------------------------------------------------------
// New
// -----------------------------------------------------------------------------

func TestNew_KeepsVariants(t *testing.T) {
	t.Parallel()

	p, _ := newBufferedPen(t, pen.Middle{}, pen.Green{})
	assert.Equal(t, pen.Middle{}, p.Size())
	assert.Equal(t, pen.Green{}, p.Color())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		size    pen.Size
		color   pen.Color
		opts    []pen.Option
		wantArg string
	}{
		{name: "nil size", size: nil, color: pen.Red{}, wantArg: "size"},
		{name: "nil color", size: pen.Small{}, color: nil, wantArg: "color"},
		{name: "both nil reports size first", size: nil, color: nil, wantArg: "size"},
		{
			name:    "nil output",
			size:    pen.Small{},
			color:   pen.Red{},
			opts:    []pen.Option{pen.WithOutput(nil)},
			wantArg: "output",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p, err := pen.New(tc.size, tc.color, tc.opts...)
			require.Error(t, err)
			assert.Nil(t, p)

			assert.True(t, errors.Is(err, pen.ErrInvalidArgument))

			var invalid pen.InvalidArgumentError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.wantArg, invalid.Arg)
			assert.Contains(t, err.Error(), `"`+tc.wantArg+`"`)
		})
	}
}

func TestNew_NilOptionIgnored(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p, err := pen.New(pen.Big{}, pen.Red{}, nil, pen.WithOutput(&buf))
	require.NoError(t, err)

	p.Draw()
	assert.Equal(t, "使用红色大笔绘画\n", buf.String())
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { _ = pen.MustNew(pen.Small{}, pen.Green{}) })
	assert.PanicsWithError(t, `pen: invalid argument "color" (nil)`, func() {
		_ = pen.MustNew(pen.Small{}, nil)
	})
}

//
// -----------------------------------------------------------------------------
// Draw
// -----------------------------------------------------------------------------

func TestDraw_Scenarios(t *testing.T) {
	t.Parallel()

	cases := []struct {
		size  pen.Size
		color pen.Color
		want  string
	}{
		{pen.Small{}, pen.Red{}, "使用红色小笔绘画"},
		{pen.Middle{}, pen.Green{}, "使用绿色中笔绘画"},
		{pen.Big{}, pen.Red{}, "使用红色大笔绘画"},
		{pen.Small{}, pen.Green{}, "使用绿色小笔绘画"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()

			p, buf := newBufferedPen(t, tc.size, tc.color)
			assert.Equal(t, tc.want, p.Line())

			p.Draw()
			assert.Equal(t, tc.want+"\n", buf.String())
		})
	}
}

// Every color/size pair produces verb + color + size + noun, in that order.
func TestDraw_AllCombinations(t *testing.T) {
	t.Parallel()

	colors := []pen.Color{pen.Red{}, pen.Green{}, Blue{}}
	sizes := []pen.Size{pen.Small{}, pen.Middle{}, pen.Big{}, Tiny{}}

	for _, c := range colors {
		for _, s := range sizes {
			p, buf := newBufferedPen(t, s, c)
			p.Draw()

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			require.Len(t, lines, 1)
			assert.Equal(t, "使用"+c.Color()+s.Size()+"笔绘画", lines[0])
		}
	}
}

func TestDraw_Idempotent(t *testing.T) {
	t.Parallel()

	p, buf := newBufferedPen(t, pen.Big{}, pen.Green{})
	p.Draw()
	p.Draw()

	assert.Equal(t, "使用绿色大笔绘画\n使用绿色大笔绘画\n", buf.String())
}

func TestDraw_ExtensionVariants(t *testing.T) {
	t.Parallel()

	p, buf := newBufferedPen(t, Tiny{}, Blue{})
	p.Draw()

	assert.Equal(t, "使用蓝色极小笔绘画\n", buf.String())
}
