package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dialog is a bordered message card with a single dismiss button. It is
// always part of the render tree; Visible decides whether View draws it.
type Dialog struct {
	Title   string
	Body    string
	Button  string
	Visible bool

	TitleStyle  lipgloss.Style
	ButtonStyle lipgloss.Style
	CardStyle   lipgloss.Style
}

func NewDialog(title, body, button string) Dialog {
	return Dialog{
		Title:       title,
		Body:        body,
		Button:      button,
		TitleStyle:  lipgloss.NewStyle().Bold(true),
		ButtonStyle: lipgloss.NewStyle().Padding(0, 1).Reverse(true),
		CardStyle:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

// View renders the card, or "" while hidden.
func (d Dialog) View() string {
	if !d.Visible {
		return ""
	}
	parts := make([]string, 0, 5)
	if d.Title != "" {
		parts = append(parts, d.TitleStyle.Render(d.Title), "")
	}
	parts = append(parts, d.Body)
	if d.Button != "" {
		parts = append(parts, "", d.ButtonStyle.Render(d.Button))
	}
	return d.CardStyle.Render(strings.Join(parts, "\n"))
}
