package domain

import "time"

// ActivityType names a catalog mutation published to the activity feed.
type ActivityType string

const (
	ActivityGameCreated       ActivityType = "game.created"
	ActivityGameUpdated       ActivityType = "game.updated"
	ActivityGameFavorited     ActivityType = "game.favorited"
	ActivityGameUnfavorited   ActivityType = "game.unfavorited"
	ActivityGameInstalled     ActivityType = "game.installed"
	ActivityGameUninstalled   ActivityType = "game.uninstalled"
	ActivityNavigationSaved   ActivityType = "navigation.saved"
	ActivityNavigationRemoved ActivityType = "navigation.removed"
	ActivityLayoutSaved       ActivityType = "layout.saved"
	ActivityLayoutActivated   ActivityType = "layout.activated"
	ActivityLayoutRemoved     ActivityType = "layout.removed"
)

// ActivityEvent records one store mutation for the recent-activity feed.
// Entity+EntityID form the sharding key, so events for the same record are
// always processed in publish order.
type ActivityEvent struct {
	Type       ActivityType `json:"type"`
	Entity     string       `json:"entity"`
	EntityID   int          `json:"entityId"`
	Detail     string       `json:"detail,omitempty"`
	OccurredAt time.Time    `json:"occurredAt"`
}
