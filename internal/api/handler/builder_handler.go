package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamedeck/gamedeck/internal/core/builder"
)

// BuilderHandler serves the builder's component library so the editor can
// render the palette and stamp correct default props on freshly dropped
// components.
type BuilderHandler struct{}

func NewBuilderHandler() *BuilderHandler {
	return &BuilderHandler{}
}

type paletteComponent struct {
	builder.PaletteEntry
	DefaultProps map[string]any `json:"defaultProps"`
}

// Components handles GET /api/builder/components.
//
// @Summary      Builder component palette
// @Tags         builder
// @Produce      json
// @Success      200  {array}  paletteComponent
// @Router       /api/builder/components [get]
func (h *BuilderHandler) Components(c echo.Context) error {
	out := make([]paletteComponent, 0, len(builder.Palette))
	for _, entry := range builder.Palette {
		out = append(out, paletteComponent{
			PaletteEntry: entry,
			DefaultProps: builder.DefaultProps(entry.Type),
		})
	}
	return c.JSON(http.StatusOK, out)
}
