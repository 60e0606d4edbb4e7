// Package roster holds the friend list and the panel state of the app.
//
// The add-friend panel and the friend selection are mutually exclusive:
// every operation leaves at most one of them active.
package roster

import (
	"github.com/theirongolddev/eatsplit/internal/model"

	"github.com/shopspring/decimal"
)

// Panel is the side panel currently shown next to the roster.
type Panel int

const (
	PanelIdle Panel = iota
	PanelAdding
	PanelSplitting
)

func (p Panel) String() string {
	switch p {
	case PanelAdding:
		return "adding"
	case PanelSplitting:
		return "splitting"
	default:
		return "idle"
	}
}

// Store is the single application state tree. It is owned by the top-level
// controller and handed to views by pointer.
type Store struct {
	friends    []model.Friend
	addVisible bool
	selectedID string // empty when nothing is selected
}

// NewStore creates a store seeded with a copy of friends.
func NewStore(seed []model.Friend) *Store {
	friends := make([]model.Friend, len(seed))
	copy(friends, seed)
	return &Store{friends: friends}
}

// AddFriend appends f to the roster and closes the add panel.
func (s *Store) AddFriend(f model.Friend) {
	s.friends = append(s.friends, f)
	s.addVisible = false
}

// ToggleAddForm opens or closes the add panel. Opening it drops any selection.
func (s *Store) ToggleAddForm() {
	s.addVisible = !s.addVisible
	if s.addVisible {
		s.selectedID = ""
	}
}

// SelectFriend selects the friend with the given id, or clears the selection
// when that friend is already selected. The add panel is always closed.
func (s *Store) SelectFriend(id string) {
	if s.selectedID == id {
		s.selectedID = ""
	} else if _, ok := s.index(id); ok {
		s.selectedID = id
	}
	s.addVisible = false
}

// ApplySplit adds delta to the selected friend's balance and clears the
// selection. It reports false and changes nothing when no friend is selected.
func (s *Store) ApplySplit(delta decimal.Decimal) bool {
	i, ok := s.index(s.selectedID)
	if !ok {
		return false
	}
	s.friends[i].Balance = s.friends[i].Balance.Add(delta)
	s.selectedID = ""
	return true
}

// Friends returns a copy of the roster in insertion order.
func (s *Store) Friends() []model.Friend {
	out := make([]model.Friend, len(s.friends))
	copy(out, s.friends)
	return out
}

// Len returns the number of friends.
func (s *Store) Len() int {
	return len(s.friends)
}

// Friend looks up a friend by id.
func (s *Store) Friend(id string) (model.Friend, bool) {
	i, ok := s.index(id)
	if !ok {
		return model.Friend{}, false
	}
	return s.friends[i], true
}

// Selected returns the selected friend, if any.
func (s *Store) Selected() (model.Friend, bool) {
	return s.Friend(s.selectedID)
}

// IsSelected reports whether id is the current selection. It is false for
// every id when nothing is selected.
func (s *Store) IsSelected(id string) bool {
	return s.selectedID != "" && s.selectedID == id
}

// Totals sums what friends owe the user and what the user owes friends.
// Both results are non-negative.
func (s *Store) Totals() (owed, owing decimal.Decimal) {
	for _, f := range s.friends {
		switch f.Standing() {
		case model.Owed:
			owed = owed.Add(f.Balance)
		case model.Owing:
			owing = owing.Sub(f.Balance)
		}
	}
	return owed, owing
}

// AddFormVisible reports whether the add panel is open.
func (s *Store) AddFormVisible() bool {
	return s.addVisible
}

// Panel returns the current panel state.
func (s *Store) Panel() Panel {
	switch {
	case s.addVisible:
		return PanelAdding
	case s.selectedID != "":
		return PanelSplitting
	default:
		return PanelIdle
	}
}

func (s *Store) index(id string) (int, bool) {
	if id == "" {
		return 0, false
	}
	for i, f := range s.friends {
		if f.ID == id {
			return i, true
		}
	}
	return 0, false
}
