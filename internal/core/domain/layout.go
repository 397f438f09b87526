package domain

import (
	"errors"
	"time"
)

var ErrLayoutNotFound = errors.New("layout not found")
var ErrNoActiveLayout = errors.New("no active layout")

// ComponentType enumerates the building blocks a layout may contain.
type ComponentType string

const (
	ComponentSection    ComponentType = "section"
	ComponentContainer  ComponentType = "container"
	ComponentGrid       ComponentType = "grid"
	ComponentGameCard   ComponentType = "game-card"
	ComponentHeroBanner ComponentType = "hero-banner"
	ComponentTextBlock  ComponentType = "text-block"
	ComponentButton     ComponentType = "button"
	ComponentForm       ComponentType = "form"
	ComponentTabs       ComponentType = "tabs"
)

// ComponentTypes lists every valid ComponentType.
var ComponentTypes = []ComponentType{
	ComponentSection,
	ComponentContainer,
	ComponentGrid,
	ComponentGameCard,
	ComponentHeroBanner,
	ComponentTextBlock,
	ComponentButton,
	ComponentForm,
	ComponentTabs,
}

// Valid reports whether t is a known component type.
func (t ComponentType) Valid() bool {
	for _, known := range ComponentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// BuilderComponent is one placed block inside a layout. Its identifier is
// generated client-side at drop time and is unique only within one layout's
// component list — never store-assigned. Props is an open map whose shape
// depends on Type. Children is carried on the wire but never populated by
// the builder; only the flat list is interpreted.
type BuilderComponent struct {
	ID       string             `json:"id"`
	Type     ComponentType      `json:"type"`
	Props    map[string]any     `json:"props,omitempty"`
	Children []BuilderComponent `json:"children,omitempty"`
}

// Layout is a named, persisted component arrangement. The store treats
// Components as an opaque ordered sequence: it is only ever replaced
// wholesale, never merged. At most one layout is active at a time.
type Layout struct {
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	Components []BuilderComponent `json:"components"`
	IsActive   bool               `json:"isActive"`
	CreatedAt  time.Time          `json:"createdAt"`
}
