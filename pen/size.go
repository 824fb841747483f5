package pen

// Size is the other axis of a Pen: how broad the stroke is.
type Size interface {
	Size() string
}

type Small struct{}

func (Small) Size() string { return "小" }

type Middle struct{}

func (Middle) Size() string { return "中" }

type Big struct{}

func (Big) Size() string { return "大" }
