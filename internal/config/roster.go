package config

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// defaultFriends is the built-in starting roster.
var defaultFriends = []FriendConfig{
	{ID: "118836", Name: "Clark", Image: "https://i.pravatar.cc/48?u=118836"},
	{ID: "933372", Name: "Sarah", Image: "https://i.pravatar.cc/48?u=933372"},
	{ID: "499476", Name: "Anthony", Image: "https://i.pravatar.cc/48?u=499476"},
}

// SeedFriends builds the starting roster: the built-in friends when
// seed_defaults is on, followed by the configured ones.
func SeedFriends(cfg Config) ([]model.Friend, error) {
	var entries []FriendConfig
	if cfg.Roster.SeedDefaults {
		entries = append(entries, defaultFriends...)
	}
	entries = append(entries, cfg.Roster.Friends...)

	friends := make([]model.Friend, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("roster friend %d: missing name", i+1)
		}

		id := e.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("roster friend %q: duplicate id %q", name, id)
		}
		seen[id] = struct{}{}

		balance := decimal.Zero
		if e.Balance != "" {
			b, err := model.ParseBalance(e.Balance)
			if err != nil {
				return nil, fmt.Errorf("roster friend %q: balance: %w", name, err)
			}
			balance = b
		}

		image := e.Image
		if image == "" {
			image = cfg.Roster.DefaultImage + "?=" + id
		}

		friends = append(friends, model.Friend{
			ID:      id,
			Name:    name,
			Image:   image,
			Balance: balance,
		})
	}
	return friends, nil
}
