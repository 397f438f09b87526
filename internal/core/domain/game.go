package domain

import (
	"errors"
	"time"
)

var ErrGameNotFound = errors.New("game not found")

// Game is one catalog entry. Rating is an integer on a 0–50 scale mapping to
// a displayed 0.0–5.0 score (rating/10).
type Game struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CoverImage  string    `json:"coverImage"`
	Rating      int       `json:"rating"`
	IsInstalled bool      `json:"isInstalled"`
	IsFavorite  bool      `json:"isFavorite"`
	PlayMode    string    `json:"playMode"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DisplayRating converts the stored 0–50 rating to its 0.0–5.0 display value.
func (g Game) DisplayRating() float64 {
	return float64(g.Rating) / 10
}
