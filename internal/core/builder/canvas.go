// Package builder implements the layout editor's session-local component
// list: dropping new blocks, editing their props, removing them and
// reordering by drag. The canvas lives only in one editing session's memory;
// persistence happens elsewhere by saving the full component list into a
// layout in a single write.
package builder

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gamedeck/gamedeck/internal/core/domain"
)

// Canvas is the ordered list of components under edit. It belongs to a
// single session and is not safe for concurrent use.
type Canvas struct {
	components []domain.BuilderComponent
}

// NewCanvas starts an editing session. The initial components, typically a
// loaded layout's list, are copied so the caller's slice stays untouched.
func NewCanvas(initial []domain.BuilderComponent) *Canvas {
	c := &Canvas{components: make([]domain.BuilderComponent, len(initial))}
	copy(c.components, initial)
	return c
}

// Components returns a copy of the current ordered list, ready to be saved
// wholesale into a layout.
func (c *Canvas) Components() []domain.BuilderComponent {
	out := make([]domain.BuilderComponent, len(c.components))
	copy(out, c.components)
	return out
}

// Len returns the number of components on the canvas.
func (c *Canvas) Len() int {
	return len(c.components)
}

// Drop appends a new component of the given type with its default props and
// returns the freshly generated identifier. Identifiers are random tokens
// local to this canvas, never allocated by the record store.
func (c *Canvas) Drop(t domain.ComponentType) string {
	id := uuid.NewString()
	c.components = append(c.components, domain.BuilderComponent{
		ID:       id,
		Type:     t,
		Props:    DefaultProps(t),
		Children: []domain.BuilderComponent{},
	})
	return id
}

// ComponentPatch is a partial edit applied to one placed component. A non-nil
// Props replaces the component's props map wholesale; the property editor
// merges individual keys before calling Update.
type ComponentPatch struct {
	Type  *domain.ComponentType
	Props map[string]any
}

// Update shallow-merges patch into the component with the given identifier.
// A missing identifier is a no-op.
func (c *Canvas) Update(id string, patch ComponentPatch) {
	for i := range c.components {
		if c.components[i].ID != id {
			continue
		}
		if patch.Type != nil {
			c.components[i].Type = *patch.Type
		}
		if patch.Props != nil {
			c.components[i].Props = patch.Props
		}
		return
	}
}

// SetProp merges a single property into the component's props map,
// preserving all other keys. A missing identifier is a no-op.
func (c *Canvas) SetProp(id, key string, value any) {
	for i := range c.components {
		if c.components[i].ID != id {
			continue
		}
		merged := make(map[string]any, len(c.components[i].Props)+1)
		for k, v := range c.components[i].Props {
			merged[k] = v
		}
		merged[key] = value
		c.components[i].Props = merged
		return
	}
}

// Remove deletes the component with the given identifier, preserving the
// order of the rest. A missing identifier is a no-op.
func (c *Canvas) Remove(id string) {
	for i := range c.components {
		if c.components[i].ID == id {
			c.components = append(c.components[:i], c.components[i+1:]...)
			return
		}
	}
}

// Move takes the component at dragIndex out of the list and reinserts it at
// hoverIndex, shifting everything between by one position. Moving an element
// onto its own index leaves the list unchanged. Indices outside the list are
// an error and leave the list untouched.
func (c *Canvas) Move(dragIndex, hoverIndex int) error {
	n := len(c.components)
	if dragIndex < 0 || dragIndex >= n {
		return fmt.Errorf("builder: drag index %d out of range [0,%d)", dragIndex, n)
	}
	if hoverIndex < 0 || hoverIndex >= n {
		return fmt.Errorf("builder: hover index %d out of range [0,%d)", hoverIndex, n)
	}
	if dragIndex == hoverIndex {
		return nil
	}
	moved := c.components[dragIndex]
	rest := append(c.components[:dragIndex], c.components[dragIndex+1:]...)
	rest = append(rest, domain.BuilderComponent{})
	copy(rest[hoverIndex+1:], rest[hoverIndex:])
	rest[hoverIndex] = moved
	c.components = rest
	return nil
}
