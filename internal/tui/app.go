// Package tui provides the interactive Bubble Tea screen for eatsplit.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/cli"
	"github.com/theirongolddev/eatsplit/internal/form"
	"github.com/theirongolddev/eatsplit/internal/model"
	"github.com/theirongolddev/eatsplit/internal/roster"
	"github.com/theirongolddev/eatsplit/internal/tui/components"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// focus is the panel that receives key presses.
type focus int

const (
	focusRoster focus = iota
	focusAdd
	focusSplit
)

// Options configures NewApp.
type Options struct {
	Friends      []model.Friend
	DefaultImage string
	FirstRun     bool          // show the setup wizard before the roster
	NewID        func() string // nil uses form.NewID
}

// App is the root Bubble Tea model.
type App struct {
	store *roster.Store

	// Roster navigation
	cursor int
	offset int
	focus  focus

	// Side panels
	add   addFormState
	split splitFormState

	// UI state
	width    int
	height   int
	showHelp bool
	help     help.Model
	notice   string

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool

	newID func() string
}

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 160

	headerHeight     = 1
	statusBarHeight  = 1
	minContentHeight = 8
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	base := opts.DefaultImage
	if base == "" {
		base = form.DefaultImageURL
	}
	newID := opts.NewID
	if newID == nil {
		newID = form.NewID
	}

	t := theme.Active
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.TextMuted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.TextDim)

	a := App{
		store: roster.NewStore(opts.Friends),
		add:   newAddFormState(base),
		split: newSplitFormState(),
		help:  h,
		newID: newID,
	}

	if opts.FirstRun {
		a.setupVals = &SetupValues{
			Theme:        t.Name,
			DefaultImage: base,
			SeedDefaults: true,
		}
		a.setupForm = NewSetupForm(a.setupVals)
		a.needSetup = true
	}
	return a
}

// Store exposes the roster state. Used by tests and the CLI.
func (a App) Store() *roster.Store {
	return a.store
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.update(msg)
	next, ok := m.(App)
	if !ok {
		return m, cmd
	}
	next.clampCursor()
	return next, cmd
}

func (a App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return a, tea.Quit
		}
	}

	// First-run setup wizard intercepts everything else
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if a.showHelp {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		switch a.focus {
		case focusAdd:
			return a.updateAddForm(msg)
		case focusSplit:
			return a.updateSplitForm(msg)
		}
		return a.updateRoster(msg)
	}

	return a, nil
}

func (a App) updateRoster(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Help):
		a.showHelp = true
		return a, nil

	case key.Matches(msg, keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(msg, keys.Down):
		if a.cursor < a.store.Len()-1 {
			a.cursor++
		}
		return a, nil

	case key.Matches(msg, keys.Select):
		friends := a.store.Friends()
		if len(friends) == 0 {
			return a, nil
		}
		return a.selectFriend(friends[a.cursor].ID)

	case key.Matches(msg, keys.AddFriend):
		return a.toggleAddForm()

	case key.Matches(msg, keys.FocusPanel):
		switch a.store.Panel() {
		case roster.PanelAdding:
			a.focus = focusAdd
			return a, a.add.focusField(a.add.field)
		case roster.PanelSplitting:
			a.focus = focusSplit
			return a, a.split.focusField(a.split.field)
		}
		return a, nil

	case key.Matches(msg, keys.ClosePanel):
		switch a.store.Panel() {
		case roster.PanelAdding:
			return a.toggleAddForm()
		case roster.PanelSplitting:
			if f, ok := a.store.Selected(); ok {
				return a.selectFriend(f.ID)
			}
		}
		return a, nil
	}
	return a, nil
}

// selectFriend toggles the selection of id. A new selection opens a fresh
// split form and gives it focus.
func (a App) selectFriend(id string) (tea.Model, tea.Cmd) {
	a.store.SelectFriend(id)
	a.add.blur()
	a.split.blur()

	if !a.store.IsSelected(id) {
		a.focus = focusRoster
		slog.Debug("selection cleared", "id", id)
		return a, nil
	}

	slog.Debug("friend selected", "id", id)
	cmd := a.split.reset()
	a.focus = focusSplit
	return a, cmd
}

// toggleAddForm opens or closes the add panel. Opening it resets the form
// and gives it focus.
func (a App) toggleAddForm() (tea.Model, tea.Cmd) {
	a.store.ToggleAddForm()
	a.split.blur()

	if !a.store.AddFormVisible() {
		a.add.blur()
		a.focus = focusRoster
		return a, nil
	}

	cmd := a.add.reset()
	a.focus = focusAdd
	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// clampCursor keeps the cursor on a friend and the scroll window around it.
func (a *App) clampCursor() {
	n := a.store.Len()
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	_, rosterH := a.rosterGeometry()
	a.offset = scrollWindow(a.cursor, a.offset, rosterCapacity(rosterH), n)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) contentHeight() int {
	h := a.height - headerHeight - statusBarHeight
	if h < minContentHeight {
		h = minContentHeight
	}
	return h
}

// rosterGeometry returns the outer width and height of the roster card.
// In the compact layout the open panel is stacked under the roster.
func (a App) rosterGeometry() (w, h int) {
	cw := a.contentWidth()
	ch := a.contentHeight()
	if a.isCompactLayout() {
		if a.store.Panel() != roster.PanelIdle {
			ch -= lipgloss.Height(a.renderPanel(cw))
		}
		if ch < rosterChrome+friendRowHeight {
			ch = rosterChrome + friendRowHeight
		}
		return cw, ch
	}
	return components.LayoutRow(cw, 2)[0], ch
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.viewSetup()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  eatsplit needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Friends", []struct{ key, desc string }{
			{"j k", "Move between friends"},
			{"Enter", "Select / close a friend"},
			{"a", "Open / close the add form"},
			{"Tab", "Focus the open panel"},
			{"Esc", "Close the open panel"},
		}},
		{"Forms", []struct{ key, desc string }{
			{"Tab ↑ ↓", "Move between fields"},
			{"← →", "Choose who pays"},
			{"Enter", "Submit"},
			{"Esc", "Back to the list"},
		}},
		{"General", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderHeader(w int) string {
	t := theme.Active
	logo := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render(" ◈ eatsplit")
	sub := lipgloss.NewStyle().Foreground(t.TextMuted).Render(" · split bills with friends")

	owed, owing := a.store.Totals()
	summary := lipgloss.NewStyle().Foreground(t.Green).Render("owed $"+cli.FormatAmount(owed)) +
		lipgloss.NewStyle().Foreground(t.TextDim).Render(" │ ") +
		lipgloss.NewStyle().Foreground(t.Red).Render("owing $"+cli.FormatAmount(owing)) + " "

	left := logo + sub
	gap := w - lipgloss.Width(left) - lipgloss.Width(summary)
	if gap < 1 {
		return truncateWidth(left, w)
	}
	return left + strings.Repeat(" ", gap) + summary
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	h := a.height
	cw := a.contentWidth()
	contentH := a.contentHeight()

	header := a.renderHeader(w)

	summary := cli.Plural(a.store.Len(), "friend")
	if a.notice != "" {
		summary = a.notice
	}
	hints := a.help.ShortHelpView(keys.hints(a.focus, a.store.Panel() != roster.PanelIdle))
	statusBar := components.RenderStatusBar(w, hints, summary)

	rosterW, rosterH := a.rosterGeometry()
	var content string
	if a.isCompactLayout() {
		parts := []string{a.renderRoster(rosterW, rosterH)}
		if a.store.Panel() != roster.PanelIdle {
			parts = append(parts, a.renderPanel(cw))
		}
		content = lipgloss.JoinVertical(lipgloss.Left, parts...)
	} else {
		widths := components.LayoutRow(cw, 2)
		content = components.CardRow([]string{
			a.renderRoster(widths[0], rosterH),
			a.renderPanel(widths[1]),
		})
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Left, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Mouse Support ──────────────────────────────────────────────

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case tea.MouseButtonWheelDown:
		if a.cursor < a.store.Len()-1 {
			a.cursor++
		}
		return a, nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		rosterW, rosterH := a.rosterGeometry()
		y := msg.Y - headerHeight

		if msg.X < rosterW && y >= 0 && y < rosterH {
			if i, ok := a.friendAt(y, rosterH); ok {
				a.cursor = i
				return a.selectFriend(a.store.Friends()[i].ID)
			}
			if y == a.addButtonRow(rosterH) {
				return a.toggleAddForm()
			}
			a.focus = focusRoster
			a.add.blur()
			a.split.blur()
			return a, nil
		}

		// Anywhere else on the content area focuses the open panel.
		switch a.store.Panel() {
		case roster.PanelAdding:
			a.focus = focusAdd
			return a, a.add.focusField(a.add.field)
		case roster.PanelSplitting:
			a.focus = focusSplit
			return a, a.split.focusField(a.split.field)
		}
	}
	return a, nil
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// truncateWidth cuts a styled string to w display columns.
func truncateWidth(s string, w int) string {
	return lipgloss.NewStyle().MaxWidth(w).Render(s)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}
