package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding the app reacts to. Which ones are active
// depends on the focused panel.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	AddFriend  key.Binding
	ClosePanel key.Binding
	FocusPanel key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	Back       key.Binding
	TogglePay  key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "move")),
	Down:       key.NewBinding(key.WithKeys("j", "down")),
	Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select/close")),
	AddFriend:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add friend")),
	ClosePanel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close panel")),
	FocusPanel: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus panel")),
	NextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to list")),
	TogglePay:  key.NewBinding(key.WithKeys("left", "right", " ", "h", "l"), key.WithHelp("←/→", "who pays")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
}

// hints returns the short help for the focused panel.
func (k keyMap) hints(f focus, panelOpen bool) []key.Binding {
	switch f {
	case focusAdd:
		return []key.Binding{k.NextField, k.Submit, k.Back}
	case focusSplit:
		return []key.Binding{k.NextField, k.TogglePay, k.Submit, k.Back}
	default:
		out := []key.Binding{k.Up, k.Select, k.AddFriend}
		if panelOpen {
			out = append(out, k.FocusPanel, k.ClosePanel)
		}
		return append(out, k.Help, k.Quit)
	}
}
