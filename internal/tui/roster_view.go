package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/cli"
	"github.com/theirongolddev/eatsplit/internal/tui/components"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	friendRowHeight = 3 // name, balance, image
	rosterChrome    = 5 // border (2) + title + blank + add button
	rosterTitleRows = 2 // top border + title
)

// rosterCapacity returns how many friend rows fit in a roster card of
// outer height h.
func rosterCapacity(h int) int {
	n := (h - rosterChrome) / friendRowHeight
	if n < 1 {
		n = 1
	}
	return n
}

// scrollWindow returns the first visible row so that cursor stays inside a
// window of capacity rows, moving offset as little as possible.
func scrollWindow(cursor, offset, capacity, n int) int {
	if capacity <= 0 || n <= capacity {
		return 0
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+capacity {
		offset = cursor - capacity + 1
	}
	if offset > n-capacity {
		offset = n - capacity
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (a App) renderRoster(w, h int) string {
	t := theme.Active
	iw := components.CardInnerWidth(w)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	selectedName := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	buttonStyle := lipgloss.NewStyle().Foreground(t.Accent)
	activeButton := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true)

	friends := a.store.Friends()
	capacity := rosterCapacity(h)
	end := a.offset + capacity
	if end > len(friends) {
		end = len(friends)
	}

	title := fmt.Sprintf("Friends (%d)", len(friends))
	if len(friends) > capacity {
		title = fmt.Sprintf("Friends %d-%d of %d", a.offset+1, end, len(friends))
	}

	var b strings.Builder
	if len(friends) == 0 {
		b.WriteString(mutedStyle.Render("No friends yet. Press a to add one."))
		b.WriteString("\n\n\n")
	}
	for i := a.offset; i < end; i++ {
		f := friends[i]
		selected := a.store.IsSelected(f.ID)

		ms, ns, bs, gs := markerStyle, nameStyle, buttonStyle, lipgloss.NewStyle()
		if selected {
			ns = selectedName
		}
		if bg, ok := a.rowBackground(i, f.ID); ok {
			ms, ns, bs, gs = ms.Background(bg), ns.Background(bg), bs.Background(bg), gs.Background(bg)
		}

		marker := gs.Render("  ")
		if i == a.cursor && a.focus == focusRoster {
			marker = ms.Render("▸ ")
		}

		button := bs.Render("[Select]")
		if selected {
			button = activeButton.Render("[Close]")
		}

		name := ns.Render(truncStr(f.Name, iw-12))
		gap := iw - lipgloss.Width(marker) - lipgloss.Width(name) - lipgloss.Width(button)
		if gap < 1 {
			gap = 1
		}

		balance := lipgloss.NewStyle().Foreground(t.StandingColor(f.Standing()))

		b.WriteString(marker + name + gs.Render(strings.Repeat(" ", gap)) + button + "\n")
		b.WriteString("  " + balance.Render(truncStr(cli.BalanceMessage(f), iw-2)) + "\n")
		b.WriteString("  " + dimStyle.Render(truncStr(f.Image, iw-2)) + "\n")
	}

	b.WriteString("\n")
	if a.store.AddFormVisible() {
		b.WriteString(activeButton.Render("[Close]"))
	} else {
		b.WriteString(buttonStyle.Render("[+ Add friend]"))
	}

	return components.PanelCard(title, b.String(), w, a.focus == focusRoster)
}

// rowBackground picks the name-line background for row i: the selected
// friend first, then the roster cursor.
func (a App) rowBackground(i int, id string) (lipgloss.Color, bool) {
	switch {
	case a.store.IsSelected(id):
		return theme.Active.SurfaceBright, true
	case i == a.cursor && a.focus == focusRoster:
		return theme.Active.SurfaceHover, true
	}
	return "", false
}

// renderIdlePanel fills the panel slot when neither form is open.
func (a App) renderIdlePanel(w int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	b.WriteString(muted.Render("Select a friend to split a bill,"))
	b.WriteString("\n")
	b.WriteString(muted.Render("or press "))
	b.WriteString(accent.Render("a"))
	b.WriteString(muted.Render(" to add one."))
	return components.ContentCard("Nothing open", b.String(), w)
}

// renderPanel renders whichever side panel the store says is open.
func (a App) renderPanel(w int) string {
	if a.store.AddFormVisible() {
		return a.renderAddForm(w)
	}
	if f, ok := a.store.Selected(); ok {
		return a.renderSplitForm(f, w)
	}
	return a.renderIdlePanel(w)
}

// friendAt maps a screen row inside the roster card to a friend index.
// y is relative to the top of the roster card.
func (a App) friendAt(y, h int) (int, bool) {
	row := y - rosterTitleRows
	if row < 0 {
		return 0, false
	}
	i := row / friendRowHeight
	if i >= rosterCapacity(h) {
		return 0, false
	}
	i += a.offset
	if i >= a.store.Len() {
		return 0, false
	}
	return i, true
}

// addButtonRow returns the roster-relative row of the add/close button.
func (a App) addButtonRow(h int) int {
	shown := a.store.Len() - a.offset
	if c := rosterCapacity(h); shown > c {
		shown = c
	}
	if a.store.Len() == 0 {
		shown = 1
	}
	return rosterTitleRows + shown*friendRowHeight + 1
}
