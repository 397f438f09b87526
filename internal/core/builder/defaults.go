package builder

import "github.com/gamedeck/gamedeck/internal/core/domain"

// PaletteEntry describes one draggable block in the builder's component
// library, grouped by palette category.
type PaletteEntry struct {
	Type     domain.ComponentType `json:"type"`
	Label    string               `json:"label"`
	Icon     string               `json:"icon"`
	Category string               `json:"category"`
}

// Palette lists every component available to drag onto the canvas.
var Palette = []PaletteEntry{
	{Type: domain.ComponentSection, Label: "Section", Icon: "layer-group", Category: "Layout"},
	{Type: domain.ComponentContainer, Label: "Container", Icon: "square-full", Category: "Layout"},
	{Type: domain.ComponentGrid, Label: "Grid", Icon: "th", Category: "Layout"},
	{Type: domain.ComponentGameCard, Label: "Game Card", Icon: "gamepad", Category: "Content"},
	{Type: domain.ComponentHeroBanner, Label: "Hero Banner", Icon: "image", Category: "Content"},
	{Type: domain.ComponentTextBlock, Label: "Text Block", Icon: "font", Category: "Content"},
	{Type: domain.ComponentButton, Label: "Button", Icon: "square", Category: "UI Elements"},
	{Type: domain.ComponentForm, Label: "Form", Icon: "list-alt", Category: "UI Elements"},
	{Type: domain.ComponentTabs, Label: "Tabs", Icon: "folder", Category: "UI Elements"},
}

// DefaultProps returns a fresh props map for a newly dropped component of
// the given type. Unknown types get an empty map. The result is a new map on
// every call so canvases never share prop state.
func DefaultProps(t domain.ComponentType) map[string]any {
	switch t {
	case domain.ComponentSection:
		return map[string]any{
			"title":       "New Section",
			"description": "This is a section component",
		}
	case domain.ComponentContainer:
		return map[string]any{"width": "full"}
	case domain.ComponentGrid:
		return map[string]any{"columns": 3}
	case domain.ComponentGameCard:
		return map[string]any{
			"title":    "Game Title",
			"category": "Category",
			"image":    "",
		}
	case domain.ComponentHeroBanner:
		return map[string]any{
			"title":    "Hero Banner",
			"subtitle": "This is a hero banner",
			"image":    "",
		}
	case domain.ComponentTextBlock:
		return map[string]any{
			"content": "This is a text block",
			"size":    "md",
		}
	case domain.ComponentButton:
		return map[string]any{
			"label":   "Button",
			"variant": "primary",
		}
	case domain.ComponentForm:
		return map[string]any{
			"title":  "Form",
			"fields": []any{},
		}
	case domain.ComponentTabs:
		return map[string]any{
			"tabs": []any{
				map[string]any{"label": "Tab 1", "content": "Tab 1 content"},
				map[string]any{"label": "Tab 2", "content": "Tab 2 content"},
			},
		}
	default:
		return map[string]any{}
	}
}
