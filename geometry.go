package cursorpos

import "fmt"

// Element is anything with a measurable bounding box in page coordinates.
type Element interface {
	// BoundingBox returns the element's current bounds. It returns an error
	// wrapping ErrDetached when the element is not mounted.
	BoundingBox() (Rect, error)
}

// Box is a measured bounding box, with edges precomputed.
type Box struct {
	Top, Right, Bottom, Left float64
	Width, Height            float64
}

// BoxFromRect converts a Rect into a Box.
func BoxFromRect(r Rect) Box {
	return Box{
		Top:    r.Y,
		Right:  r.X + r.Width,
		Bottom: r.Y + r.Height,
		Left:   r.X,
		Width:  r.Width,
		Height: r.Height,
	}
}

// Dimensions returns the box size.
func (b Box) Dimensions() Dimensions {
	return Dimensions{Width: b.Width, Height: b.Height}
}

// Measure reads the current bounding box of el.
func Measure(el Element) (Box, error) {
	if el == nil {
		return Box{}, fmt.Errorf("cursorpos: measure: %w", ErrDetached)
	}
	r, err := el.BoundingBox()
	if err != nil {
		return Box{}, fmt.Errorf("cursorpos: measure: %w", err)
	}
	return BoxFromRect(r), nil
}

// ToRelative converts page coordinates to coordinates relative to the box's
// top-left corner.
func ToRelative(b Box, pageX, pageY float64) Vec2 {
	return Vec2{X: pageX - b.Left, Y: pageY - b.Top}
}

// IsInside reports whether the page coordinate lies within the box.
// All four edges are inside.
func IsInside(b Box, pageX, pageY float64) bool {
	return b.Left <= pageX && pageX <= b.Right &&
		b.Top <= pageY && pageY <= b.Bottom
}
