package tui

import "github.com/charmbracelet/bubbles/key"

type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Enter  key.Binding
	Reset  key.Binding
	Close  key.Binding
	Quit   key.Binding
	Escape key.Binding
	Leave  key.Binding
}

func defaultKeyMap() formKeyMap {
	return formKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Close:  key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "close")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
		Leave:  key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
}

// scopedHelp adapts the key map to help.KeyMap for one view.
type scopedHelp []key.Binding

func (h scopedHelp) ShortHelp() []key.Binding  { return h }
func (h scopedHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k formKeyMap) formHelp() scopedHelp {
	return scopedHelp{k.Next, k.Enter, k.Reset, k.Escape}
}

func (k formKeyMap) dialogHelp() scopedHelp {
	return scopedHelp{k.Close, k.Quit}
}

func (k formKeyMap) greetingHelp() scopedHelp {
	return scopedHelp{k.Leave}
}
