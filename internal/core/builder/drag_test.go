package builder

import "testing"

// Target spanning y=100..200, midpoint at offset 50.
var target = HoverTarget{Top: 100, Bottom: 200}

func TestShouldMove_DraggingDownwards(t *testing.T) {
	// Dragging down (dragIndex < hoverIndex): commit only below the midpoint.
	if ShouldMove(0, 2, 120, target) {
		t.Fatal("pointer above midpoint must not commit a downward move")
	}
	if !ShouldMove(0, 2, 180, target) {
		t.Fatal("pointer below midpoint must commit a downward move")
	}
}

func TestShouldMove_DraggingUpwards(t *testing.T) {
	// Dragging up (dragIndex > hoverIndex): commit only above the midpoint.
	if ShouldMove(3, 1, 180, target) {
		t.Fatal("pointer below midpoint must not commit an upward move")
	}
	if !ShouldMove(3, 1, 120, target) {
		t.Fatal("pointer above midpoint must commit an upward move")
	}
}

func TestShouldMove_ExactMidpoint(t *testing.T) {
	// At the exact midpoint the downward drag commits and the upward one
	// does not, so a pointer sitting there can never flip back and forth.
	if !ShouldMove(0, 1, 150, target) {
		t.Fatal("downward drag at midpoint should commit")
	}
	if ShouldMove(1, 0, 150, target) {
		t.Fatal("upward drag at midpoint should hold")
	}
}

func TestShouldMove_SameIndexNeverMoves(t *testing.T) {
	if ShouldMove(2, 2, 199, target) {
		t.Fatal("hovering over the dragged element must never move")
	}
}

func TestOffsetWithin(t *testing.T) {
	offset := OffsetWithin(250, 340, 200, 300)
	if offset.X != 50 || offset.Y != 40 {
		t.Fatalf("unexpected offset: %+v", offset)
	}
}
