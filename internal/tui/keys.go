package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit   key.Binding
	back   key.Binding
	enter  key.Binding
	focus  key.Binding
	picker key.Binding
	save   key.Binding
	copy   key.Binding
	info   key.Binding
}

var keys = keyMap{
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "upload")),
	focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "drop zone")),
	picker: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "browse")),
	save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save image")),
	copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy summary")),
	info:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),
}

func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " • "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
