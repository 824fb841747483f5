package pen

// Color is one axis of a Pen.
type Color interface {
	Color() string
}

// Red is the red color variant.
type Red struct{}

// Color implements Color.
func (Red) Color() string { return "红色" }

// Green is the green color variant.
type Green struct{}

// Color implements Color.
func (Green) Color() string { return "绿色" }
