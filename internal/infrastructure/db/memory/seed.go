package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gamedeck/gamedeck/internal/core/ports"
)

// Seed populates a fresh store with the default admin account, the stock
// navigation menu and a handful of sample games. Intended to run once at
// process start; the admin password is hashed before storage.
func Seed(ctx context.Context, store *Store, adminPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}
	if _, err := store.Users.Create(ctx, ports.CreateUserInput{
		Username: "admin",
		Password: string(hash),
		IsAdmin:  true,
	}); err != nil {
		return fmt.Errorf("seed: create admin user: %w", err)
	}

	navItems := []ports.CreateNavigationItemInput{
		{Label: "Home", Path: "/", Icon: "home", SortOrder: 1},
		{Label: "Library", Path: "/library", Icon: "gamepad", SortOrder: 2},
		{Label: "Store", Path: "/store", Icon: "store", SortOrder: 3},
		{Label: "Friends", Path: "/friends", Icon: "user-friends", SortOrder: 4},
		{Label: "UI Builder", Path: "/admin/builder", Icon: "tools", IsAdminOnly: true, SortOrder: 5},
		{Label: "Navigation", Path: "/admin/navigation", Icon: "sitemap", IsAdminOnly: true, SortOrder: 6},
		{Label: "Settings", Path: "/admin/settings", Icon: "cog", IsAdminOnly: true, SortOrder: 7},
	}
	for _, item := range navItems {
		if _, err := store.Navigation.Create(ctx, item); err != nil {
			return fmt.Errorf("seed: create navigation item %q: %w", item.Label, err)
		}
	}

	games := []ports.CreateGameInput{
		{
			Title:       "Cyber Odyssey 2077",
			Description: "A futuristic RPG set in a dystopian world where cyberware modifications are commonplace.",
			Category:    "RPG",
			CoverImage:  "https://images.unsplash.com/photo-1612287230202-1ff1d85d1bdf?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			Rating:      48,
			IsInstalled: true,
			PlayMode:    "Single Player",
		},
		{
			Title:       "Space Explorer",
			Description: "Explore the vast unknown universe and discover new planets and species.",
			Category:    "Adventure",
			CoverImage:  "https://images.unsplash.com/photo-1552083375-1447ce886485?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			Rating:      45,
			PlayMode:    "Co-op",
		},
		{
			Title:       "Battle Royale Arena",
			Description: "Fight to be the last one standing in this action-packed battle royale.",
			Category:    "Action",
			CoverImage:  "https://images.unsplash.com/photo-1579373903781-fd5c0c30c4cd?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			Rating:      42,
			IsInstalled: true,
			IsFavorite:  true,
			PlayMode:    "Multiplayer",
		},
		{
			Title:       "Puzzle Quest",
			Description: "Challenge your mind with increasingly difficult puzzles in a fantasy setting.",
			Category:    "Puzzle",
			CoverImage:  "https://images.unsplash.com/photo-1511512578047-dfb367046420?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			Rating:      47,
			IsInstalled: true,
			PlayMode:    "Single Player",
		},
		{
			Title:       "Racing Legends",
			Description: "Race against the best drivers across famous tracks from around the world.",
			Category:    "Racing",
			CoverImage:  "https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			Rating:      43,
			IsInstalled: true,
			PlayMode:    "Multiplayer",
		},
		{
			Title:       "Fantasy Quest",
			Description: "Embark on an epic journey through magical lands in this massively multiplayer online role-playing game.",
			Category:    "Fantasy",
			CoverImage:  "https://images.unsplash.com/photo-1550745165-9bc0b252726f?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			Rating:      49,
			PlayMode:    "MMO",
		},
	}
	for _, game := range games {
		if _, err := store.Games.Create(ctx, game); err != nil {
			return fmt.Errorf("seed: create game %q: %w", game.Title, err)
		}
	}

	return nil
}
