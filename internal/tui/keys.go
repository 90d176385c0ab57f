package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	// forceQuit is the only quit chord active while a text input has
	// focus, so letters still reach the input.
	forceQuit key.Binding
	logout    key.Binding

	newTopic  key.Binding
	search    key.Binding
	mine      key.Binding
	courses   key.Binding
	profile   key.Binding
	stats     key.Binding
	refresh   key.Binding
	reply     key.Binding
	edit      key.Binding
	delete    key.Binding
	editReply key.Binding
	delReply  key.Binding
	solution  key.Binding
	copy      key.Binding

	yes key.Binding
	no  key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("ctrl+l")),

	newTopic:  key.NewBinding(key.WithKeys("n")),
	search:    key.NewBinding(key.WithKeys("/")),
	mine:      key.NewBinding(key.WithKeys("m")),
	courses:   key.NewBinding(key.WithKeys("c")),
	profile:   key.NewBinding(key.WithKeys("p")),
	stats:     key.NewBinding(key.WithKeys("t")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	reply:     key.NewBinding(key.WithKeys("a")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	editReply: key.NewBinding(key.WithKeys("E")),
	delReply:  key.NewBinding(key.WithKeys("D")),
	solution:  key.NewBinding(key.WithKeys("s")),
	copy:      key.NewBinding(key.WithKeys("y")),

	yes: key.NewBinding(key.WithKeys("y")),
	no:  key.NewBinding(key.WithKeys("n")),
}
