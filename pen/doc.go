// Package pen composes a drawing pen from two independent axes: Color and Size.
//
// Instead of one type per combination (RedSmallPen, GreenBigPen, ...), a Pen
// holds one Color and one Size and asks each for its label when drawing:
//
//	p, err := pen.New(pen.Small{}, pen.Red{})
//	if err != nil {
//		return err
//	}
//	p.Draw() // 使用红色小笔绘画
//
// Both axes are plain interfaces. Any type with a Color() string or Size()
// string method composes with Pen without touching this package.
package pen
