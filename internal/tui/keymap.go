package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Filter drawer
	Period       key.Binding
	ToggleType   key.Binding
	NextType     key.Binding
	ToggleStatus key.Binding
	NextStatus   key.Binding
	Apply        key.Binding
	Clear        key.Binding

	// List
	NextPage key.Binding
	PrevPage key.Binding
	Refresh  key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Period: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "period"),
		),
		ToggleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle type"),
		),
		NextType: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "next type"),
		),
		ToggleStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle status"),
		),
		NextStatus: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "next status"),
		),
		Apply: key.NewBinding(
			key.WithKeys("a", "enter"),
			key.WithHelp("a", "apply"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p", "prev page"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Period, k.ToggleType, k.NextType, k.ToggleStatus, k.NextStatus,
		k.Apply, k.Clear, k.NextPage, k.PrevPage, k.Refresh, k.Quit,
	}
}

// periodForKey maps the digit keys onto the drawer periods. 5 is "all time".
func periodForKey(k string) (string, bool) {
	switch k {
	case "1", "2", "3", "4":
		return periodOptions()[k[0]-'1'], true
	case "5":
		return allTime, true
	}
	return "", false
}
