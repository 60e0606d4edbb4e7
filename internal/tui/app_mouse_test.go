package tui

import (
	"testing"

	"github.com/theirongolddev/eatsplit/internal/roster"

	tea "github.com/charmbracelet/bubbletea"
)

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func TestClickFriendRowTogglesSelection(t *testing.T) {
	a := newTestApp(t, testFriends(), 120, 40)

	// header, card border and title sit above the first row
	sarahY := headerHeight + rosterTitleRows + friendRowHeight
	for _, dy := range []int{0, 1, 2} {
		a = send(t, a, click(5, sarahY+dy))
		if !a.store.IsSelected("s") {
			t.Fatalf("click at row offset %d should select Sarah", dy)
		}
		if a.cursor != 1 {
			t.Errorf("cursor = %d, want 1", a.cursor)
		}
		a = send(t, a, click(5, sarahY+dy))
		if a.store.Panel() != roster.PanelIdle {
			t.Fatalf("second click at row offset %d should clear the selection", dy)
		}
	}
}

func TestClickAddButton(t *testing.T) {
	a := newTestApp(t, testFriends(), 120, 40)

	_, h := a.rosterGeometry()
	y := headerHeight + a.addButtonRow(h)
	a = send(t, a, click(3, y))
	if !a.store.AddFormVisible() || a.focus != focusAdd {
		t.Fatal("clicking the add button should open the add form")
	}
	a = send(t, a, click(3, y))
	if a.store.AddFormVisible() {
		t.Error("clicking again should close the add form")
	}
}

func TestClickPanelTakesFocus(t *testing.T) {
	a := newTestApp(t, testFriends(), 120, 40)

	a = send(t, a, keyEnter, keyEsc)
	if a.focus != focusRoster {
		t.Fatalf("focus = %v, want roster", a.focus)
	}
	a = send(t, a, click(90, 5))
	if a.focus != focusSplit {
		t.Errorf("focus = %v, want split form", a.focus)
	}
}

func TestClickOutsideRowsIgnored(t *testing.T) {
	a := newTestApp(t, testFriends(), 120, 40)

	for _, y := range []int{0, headerHeight, headerHeight + 1} {
		a = send(t, a, click(5, y))
		if a.store.Panel() != roster.PanelIdle {
			t.Fatalf("click at y=%d changed the panel to %v", y, a.store.Panel())
		}
	}
}

func TestMouseWheelMovesCursor(t *testing.T) {
	a := newTestApp(t, testFriends(), 120, 40)

	down := tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
	up := tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}

	a = send(t, a, down, down, down, down)
	if a.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped)", a.cursor)
	}
	a = send(t, a, up)
	if a.cursor != 1 {
		t.Errorf("cursor = %d, want 1", a.cursor)
	}
}

func TestMouseIgnoredDuringHelp(t *testing.T) {
	a := newTestApp(t, testFriends(), 120, 40)

	a = send(t, a, runes("?")...)
	a = send(t, a, click(5, headerHeight+rosterTitleRows))
	if a.store.Panel() != roster.PanelIdle {
		t.Error("clicks behind the help overlay should be ignored")
	}
}
