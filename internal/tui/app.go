package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/loginform/internal/form"
	"github.com/jask/loginform/internal/widgets"
)

const (
	dialogTitle  = "Validation Error"
	dialogBody   = "All fields are required."
	dialogButton = "Close"
)

type focusTarget int

const (
	focusName focusTarget = iota
	focusEmail
	focusReset
	focusSubmit
	focusCount
)

// Options configures a mounted form. Zero values fall back to defaults.
type Options struct {
	Width            int
	Height           int
	NamePlaceholder  string
	EmailPlaceholder string
	CharLimit        int
	// Mount places the validation dialog over the view. Defaults to
	// widgets.Mount.
	Mount widgets.MountFunc
}

// App is the login form as a bubbletea model. All state the user can see
// lives in the store; the text inputs only hold cursor position and are
// re-bound from the store after every transition.
type App struct {
	store  *form.Store
	name   textinput.Model
	email  textinput.Model
	focus  focusTarget
	dialog widgets.Dialog
	keys   formKeyMap
	help   help.Model
	mount  widgets.MountFunc
	width  int
	height int
}

func New(opts Options) *App {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	if opts.Mount == nil {
		opts.Mount = widgets.Mount
	}

	dialog := widgets.NewDialog(dialogTitle, dialogBody, dialogButton)
	dialog.TitleStyle = dialogTitleStyle
	dialog.ButtonStyle = dialogButtonStyle
	dialog.CardStyle = dialogCardStyle

	h := help.New()
	h.Styles.ShortDesc = helpStyle
	h.Styles.ShortSeparator = helpStyle
	h.Width = opts.Width

	a := &App{
		store:  form.NewStore(),
		name:   newInput(opts.NamePlaceholder, opts.CharLimit),
		email:  newInput(opts.EmailPlaceholder, opts.CharLimit),
		dialog: dialog,
		keys:   defaultKeyMap(),
		help:   h,
		mount:  opts.Mount,
		width:  opts.Width,
		height: opts.Height,
	}
	a.name.Focus()
	return a
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	if limit > 0 {
		in.CharLimit = limit
	}
	in.Width = 32
	return in
}

// ID is the mount ID the store logs under.
func (a *App) ID() string {
	return a.store.ID()
}

// State returns the current form state.
func (a *App) State() form.FormState {
	return a.store.State()
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
		st := a.store.State()
		switch {
		case st.ShowModal:
			return a.handleDialogKey(m)
		case st.IsLoggedIn:
			return a.handleGreetingKey(m)
		default:
			return a.handleFormKey(m)
		}
	}
	return a, a.updateFocusedInput(msg)
}

// handleDialogKey swallows everything but the close keys while the dialog
// is up, so the form underneath cannot be edited or submitted.
func (a *App) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Close) {
		a.dispatch(form.HideModalAction())
	}
	return a, nil
}

func (a *App) handleGreetingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Leave) {
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Escape):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Next):
		return a, a.setFocus((a.focus + 1) % focusCount)
	case key.Matches(msg, a.keys.Prev):
		return a, a.setFocus((a.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, a.keys.Reset):
		a.dispatch(form.ResetFormAction())
		return a, nil
	case key.Matches(msg, a.keys.Enter):
		if a.focus == focusReset {
			a.dispatch(form.ResetFormAction())
			return a, nil
		}
		a.submit()
		return a, nil
	}
	return a, a.updateFocusedInput(msg)
}

// updateFocusedInput forwards msg to the focused text input and turns any
// change of its value into a SetName or SetEmail transition.
func (a *App) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.focus {
	case focusName:
		a.name, cmd = a.name.Update(msg)
		if v := a.name.Value(); v != a.store.State().Name {
			a.dispatch(form.SetNameAction(v))
		}
	case focusEmail:
		a.email, cmd = a.email.Update(msg)
		if v := a.email.Value(); v != a.store.State().Email {
			a.dispatch(form.SetEmailAction(v))
		}
	}
	return cmd
}

func (a *App) setFocus(f focusTarget) tea.Cmd {
	a.focus = f
	a.name.Blur()
	a.email.Blur()
	switch f {
	case focusName:
		return a.name.Focus()
	case focusEmail:
		return a.email.Focus()
	}
	return nil
}

func (a *App) submit() {
	a.store.Submit()
	a.bind()
}

func (a *App) dispatch(action form.Action) {
	a.store.Dispatch(action)
	a.bind()
}

// bind pushes store state back into the widgets.
func (a *App) bind() {
	st := a.store.State()
	if a.name.Value() != st.Name {
		a.name.SetValue(st.Name)
	}
	if a.email.Value() != st.Email {
		a.email.SetValue(st.Email)
	}
	a.dialog.Visible = st.ShowModal
}

func (a *App) View() string {
	st := a.store.State()
	var body string
	var keys help.KeyMap
	if st.IsLoggedIn {
		body = a.greetingView(st)
		keys = a.keys.greetingHelp()
	} else {
		body = a.formView()
		keys = a.keys.formHelp()
	}
	if st.ShowModal {
		keys = a.keys.dialogHelp()
	}
	base := lipgloss.JoinVertical(lipgloss.Left, body, "  "+a.help.View(keys))
	return a.mount(base, a.dialog.View(), a.width, a.height)
}

func (a *App) greetingView(st form.FormState) string {
	return formStyle.Render(greetingStyle.Render("Hello, " + printable(st.Name)))
}

func (a *App) formView() string {
	reset, submit := buttonStyle, buttonStyle
	switch a.focus {
	case focusReset:
		reset = buttonFocusStyle
	case focusSubmit:
		submit = buttonFocusStyle
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		reset.Render("Reset"), "  ", submit.Render("Submit"))

	rows := []string{
		titleStyle.Render("Log in"),
		"",
		labelStyle.Render("Name:") + a.name.View(),
		labelStyle.Render("Email:") + a.email.View(),
		"",
		buttons,
	}
	return formStyle.Render(strings.Join(rows, "\n"))
}

// printable drops escape sequences and control characters so a name cannot
// drive the terminal.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(s))
}
