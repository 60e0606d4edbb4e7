package tui

import (
	"log/slog"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/form"
	"github.com/theirongolddev/eatsplit/internal/tui/components"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	addFieldName = iota
	addFieldImage
	addFieldCount // sentinel
)

// addFormState is the add-friend panel: the form fields plus their inputs.
type addFormState struct {
	form   form.AddFriend
	inputs [addFieldCount]textinput.Model
	field  int
}

func newAddFormState(baseImage string) addFormState {
	s := addFormState{form: form.NewAddFriend(baseImage)}

	name := textinput.New()
	name.Placeholder = "Friend's name"
	name.CharLimit = 64
	name.Width = 32
	name.Prompt = ""

	image := textinput.New()
	image.Placeholder = form.DefaultImageURL
	image.CharLimit = 256
	image.Width = 32
	image.Prompt = ""

	s.inputs[addFieldName] = name
	s.inputs[addFieldImage] = image
	s.syncInputs()
	return s
}

// syncInputs copies the form fields into the text inputs.
func (s *addFormState) syncInputs() {
	s.inputs[addFieldName].SetValue(s.form.Name)
	s.inputs[addFieldImage].SetValue(s.form.Image)
}

// reset restores defaults and focuses the name field.
func (s *addFormState) reset() tea.Cmd {
	s.form.Reset()
	s.syncInputs()
	return s.focusField(addFieldName)
}

func (s *addFormState) focusField(i int) tea.Cmd {
	s.field = (i + addFieldCount) % addFieldCount
	for j := range s.inputs {
		s.inputs[j].Blur()
	}
	return s.inputs[s.field].Focus()
}

func (s *addFormState) blur() {
	for j := range s.inputs {
		s.inputs[j].Blur()
	}
}

func (a App) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		a.add.blur()
		a.focus = focusRoster
		return a, nil
	case key.Matches(msg, keys.NextField):
		return a, a.add.focusField(a.add.field + 1)
	case key.Matches(msg, keys.PrevField):
		return a, a.add.focusField(a.add.field - 1)
	case key.Matches(msg, keys.Submit):
		return a.submitAddForm()
	}

	var cmd tea.Cmd
	a.add.inputs[a.add.field], cmd = a.add.inputs[a.add.field].Update(msg)
	a.add.form.Name = a.add.inputs[addFieldName].Value()
	a.add.form.Image = a.add.inputs[addFieldImage].Value()
	return a, cmd
}

func (a App) submitAddForm() (tea.Model, tea.Cmd) {
	friend, ok := a.add.form.Submit(a.newID)
	if !ok {
		slog.Debug("add friend ignored", "reason", "empty name or image")
		return a, nil
	}

	a.store.AddFriend(friend)
	a.add.syncInputs()
	a.add.blur()
	a.focus = focusRoster
	a.cursor = a.store.Len() - 1
	slog.Debug("friend added", "id", friend.ID, "name", friend.Name)
	return a, nil
}

func (a App) renderAddForm(w int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	activeLabel := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	buttonStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true).Padding(0, 1)

	labels := [addFieldCount]string{"Name", "Image URL"}
	focused := a.focus == focusAdd

	var b strings.Builder
	for i, in := range a.add.inputs {
		ls := labelStyle
		if focused && i == a.add.field {
			ls = activeLabel
		}
		b.WriteString(ls.Render(padRight(labels[i], 11)))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(buttonStyle.Render("Add"))

	return components.PanelCard("Add a friend", b.String(), w, focused)
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
