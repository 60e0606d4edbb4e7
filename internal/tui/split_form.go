package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/cli"
	"github.com/theirongolddev/eatsplit/internal/form"
	"github.com/theirongolddev/eatsplit/internal/model"
	"github.com/theirongolddev/eatsplit/internal/tui/components"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	splitFieldBill = iota
	splitFieldUserPaid
	splitFieldPayer
	splitFieldCount // sentinel
)

// splitFormState is the split-bill panel for the selected friend.
type splitFormState struct {
	form     form.SplitBill
	bill     textinput.Model
	userPaid textinput.Model
	field    int
	rejected string // last refused keystroke, cleared by the next accepted one
}

func newAmountInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 16
	ti.Width = 16
	ti.Prompt = "$ "
	return ti
}

func newSplitFormState() splitFormState {
	return splitFormState{
		form:     form.NewSplitBill(),
		bill:     newAmountInput(),
		userPaid: newAmountInput(),
	}
}

func (s *splitFormState) reset() tea.Cmd {
	s.form.Reset()
	s.bill.SetValue("")
	s.userPaid.SetValue("")
	s.rejected = ""
	return s.focusField(splitFieldBill)
}

func (s *splitFormState) focusField(i int) tea.Cmd {
	s.field = (i + splitFieldCount) % splitFieldCount
	s.bill.Blur()
	s.userPaid.Blur()
	switch s.field {
	case splitFieldBill:
		return s.bill.Focus()
	case splitFieldUserPaid:
		return s.userPaid.Focus()
	}
	return nil
}

func (s *splitFormState) blur() {
	s.bill.Blur()
	s.userPaid.Blur()
}

// updateAmount feeds a key to an amount input and keeps the result only if
// it has no blanks and set accepts it. Otherwise the input reverts to its
// previous text and cursor position.
func updateAmount(in textinput.Model, msg tea.Msg, set func(string) bool) (textinput.Model, tea.Cmd, bool) {
	prev, pos := in.Value(), in.Position()
	next, cmd := in.Update(msg)
	if next.Value() == prev {
		return next, cmd, true
	}
	if strings.ContainsAny(next.Value(), " \t") || !set(next.Value()) {
		next.SetValue(prev)
		next.SetCursor(pos)
		return next, cmd, false
	}
	return next, cmd, true
}

func (a App) updateSplitForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		a.split.blur()
		a.focus = focusRoster
		return a, nil
	case key.Matches(msg, keys.Submit):
		return a.submitSplitForm()
	case key.Matches(msg, keys.NextField):
		return a, a.split.focusField(a.split.field + 1)
	case key.Matches(msg, keys.PrevField):
		return a, a.split.focusField(a.split.field - 1)
	}

	var cmd tea.Cmd
	var accepted bool
	switch a.split.field {
	case splitFieldBill:
		a.split.bill, cmd, accepted = updateAmount(a.split.bill, msg, a.split.form.SetBill)
		if !accepted {
			slog.Debug("bill entry rejected", "input", msg.String())
			a.split.rejected = "Bill must be a plain amount, like 42.50"
		}
	case splitFieldUserPaid:
		a.split.userPaid, cmd, accepted = updateAmount(a.split.userPaid, msg, a.split.form.SetUserPaid)
		if !accepted {
			slog.Debug("user share rejected", "input", msg.String(), "bill", a.split.form.Bill().String())
			a.split.rejected = "Your expense must be an amount up to the bill"
		}
	case splitFieldPayer:
		accepted = true
		if key.Matches(msg, keys.TogglePay) {
			a.split.form.TogglePayer()
		}
	}
	if accepted {
		a.split.rejected = ""
	}
	return a, cmd
}

func (a App) submitSplitForm() (tea.Model, tea.Cmd) {
	friend, ok := a.store.Selected()
	if !ok {
		return a, nil
	}
	delta, ok := a.split.form.Delta()
	if !ok {
		slog.Debug("split ignored", "reason", "bill or user share empty")
		return a, nil
	}
	if !a.store.ApplySplit(delta) {
		return a, nil
	}

	slog.Debug("split applied",
		"friend", friend.Name,
		"payer", string(a.split.form.Payer()),
		"delta", delta.String(),
	)
	a.split.reset()
	a.split.blur()
	a.focus = focusRoster
	return a, nil
}

func (a App) renderSplitForm(friend model.Friend, w int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	activeLabel := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	chosenStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	buttonStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true).Padding(0, 1)
	rejectStyle := lipgloss.NewStyle().Foreground(t.Orange)

	focused := a.focus == focusSplit
	label := func(field int, text string) string {
		if focused && a.split.field == field {
			return activeLabel.Render(padRight(text, 24))
		}
		return labelStyle.Render(padRight(text, 24))
	}

	friendPaid := a.split.form.FriendPaid()
	friendPaidText := dimStyle.Render("-")
	if friendPaid.Set {
		friendPaidText = valueStyle.Render("$ " + cli.FormatAmount(friendPaid.Value))
	}

	var payer string
	for _, opt := range []struct {
		value model.Payer
		label string
	}{
		{model.PayerUser, "You"},
		{model.PayerFriend, friend.Name},
	} {
		if a.split.form.Payer() == opt.value {
			payer += chosenStyle.Render("(•) " + opt.label)
		} else {
			payer += labelStyle.Render("( ) " + opt.label)
		}
		payer += "  "
	}

	var b strings.Builder
	b.WriteString(label(splitFieldBill, "Bill value"))
	b.WriteString(a.split.bill.View())
	b.WriteString("\n")
	b.WriteString(label(splitFieldUserPaid, "Your expense"))
	b.WriteString(a.split.userPaid.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(padRight(fmt.Sprintf("%s's expense", friend.Name), 24)))
	b.WriteString(friendPaidText)
	b.WriteString("\n")
	b.WriteString(label(splitFieldPayer, "Who is paying the bill"))
	b.WriteString(strings.TrimRight(payer, " "))
	b.WriteString("\n")
	if a.split.rejected != "" {
		b.WriteString(rejectStyle.Render(truncStr(a.split.rejected, components.CardInnerWidth(w))))
	}
	b.WriteString("\n")
	b.WriteString(buttonStyle.Render("Split bill"))

	return components.PanelCard(fmt.Sprintf("Split a bill with %s", friend.Name), b.String(), w, focused)
}
