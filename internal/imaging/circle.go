package imaging

import (
	"image"
)

// Circle is a circular search region in pixel coordinates.
type Circle struct {
	CenterX int `json:"center_x"`
	CenterY int `json:"center_y"`
	Radius  int `json:"radius"`
}

// CenterOf returns the integer center of a width x height frame.
func CenterOf(width, height int) (x, y int) {
	return width / 2, height / 2
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c Circle) Contains(x, y int) bool {
	if c.Radius < 0 {
		return false
	}
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Bounds returns the square that encloses the circle. Max is exclusive.
//
// A negative radius yields the empty rectangle.
func (c Circle) Bounds() image.Rectangle {
	if c.Radius < 0 {
		return image.Rectangle{}
	}
	return image.Rect(
		c.CenterX-c.Radius, c.CenterY-c.Radius,
		c.CenterX+c.Radius+1, c.CenterY+c.Radius+1,
	)
}

// Fit returns c with its radius capped at the largest distance any pixel of
// bounds can have from the center. The capped circle covers exactly the same
// pixels of bounds, and its squared radius cannot overflow int.
func (c Circle) Fit(bounds image.Rectangle) Circle {
	if c.Radius < 0 || bounds.Empty() {
		return c
	}
	reach := farthest(c.CenterX, bounds.Min.X, bounds.Max.X-1) +
		farthest(c.CenterY, bounds.Min.Y, bounds.Max.Y-1)
	if c.Radius > reach {
		c.Radius = reach
	}
	return c
}

// Within returns the part of the circle's bounding square that falls inside
// the image bounds. The result is empty when the circle is off-canvas.
func (c Circle) Within(bounds image.Rectangle) image.Rectangle {
	if bounds.Empty() {
		return image.Rectangle{}
	}
	return c.Fit(bounds).Bounds().Intersect(bounds)
}

// farthest returns the larger of |v-lo| and |v-hi|.
func farthest(v, lo, hi int) int {
	a, b := v-lo, hi-v
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
