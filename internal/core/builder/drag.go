package builder

// HoverTarget is the screen rectangle of the component the pointer is
// currently over, expressed in the same coordinate space as the pointer.
type HoverTarget struct {
	Top    float64
	Bottom float64
}

// midpoint returns the target's vertical center offset from its top edge.
func (t HoverTarget) midpoint() float64 {
	return (t.Bottom - t.Top) / 2
}

// ShouldMove decides whether a drag hovering over the element at hoverIndex
// should commit a reorder. The move fires only once the pointer crosses the
// hovered element's vertical midpoint, and only in the direction the drag is
// travelling: dragging downward commits below the midpoint, dragging upward
// commits above it. Hovering over the dragged element itself never moves.
// The hysteresis keeps the list from oscillating while the pointer sits near
// the midpoint.
func ShouldMove(dragIndex, hoverIndex int, pointerY float64, target HoverTarget) bool {
	if dragIndex == hoverIndex {
		return false
	}
	hoverClientY := pointerY - target.Top
	hoverMiddleY := target.midpoint()

	// Dragging downwards: wait until the pointer passes the midpoint.
	if dragIndex < hoverIndex && hoverClientY < hoverMiddleY {
		return false
	}
	// Dragging upwards: wait until the pointer rises above the midpoint.
	if dragIndex > hoverIndex && hoverClientY > hoverMiddleY {
		return false
	}
	return true
}

// DropOffset is the pixel position of a drop relative to the canvas origin.
// It is reported to the caller for drop-target placement but never persisted;
// saved layouts are ordered lists, not coordinates.
type DropOffset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// OffsetWithin translates an absolute pointer position into a DropOffset
// relative to the canvas rectangle's top-left corner.
func OffsetWithin(pointerX, pointerY, canvasLeft, canvasTop float64) DropOffset {
	return DropOffset{X: pointerX - canvasLeft, Y: pointerY - canvasTop}
}
