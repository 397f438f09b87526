package domain

import (
	"errors"
	"time"
)

var ErrNavigationItemNotFound = errors.New("navigation item not found")

// NavigationItem is one entry in the site menu. SortOrder drives display
// order and is advisory: the store does not enforce uniqueness or gaplessness.
// ParentID is carried on the wire for hierarchical menus but no renderer
// consumes it; only the flat, sorted listing is interpreted.
type NavigationItem struct {
	ID          int       `json:"id"`
	Label       string    `json:"label"`
	Path        string    `json:"path"`
	Icon        string    `json:"icon"`
	IsAdminOnly bool      `json:"isAdminOnly"`
	SortOrder   int       `json:"sortOrder"`
	ParentID    *int      `json:"parentId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NavIconNames maps stored icon keys to the renderer's icon identifiers.
var NavIconNames = map[string]string{
	"home":         "home",
	"gamepad":      "gamepad",
	"store":        "store",
	"user-friends": "users",
	"tools":        "wrench",
	"sitemap":      "sitemap",
	"cog":          "settings",
}
