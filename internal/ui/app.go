// Package ui is the read-eval-print loop: a command prompt with
// name autocompletion and history over a scrolling transcript.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okravets/abook/internal/commands"
	"github.com/okravets/abook/internal/ui/styles"
)

// App is the bubbletea model for the assistant session.
type App struct {
	sess     *commands.Session
	registry *commands.Registry

	styles *styles.Styles
	keys   keyMap

	input      textinput.Model
	viewport   viewport.Model
	transcript []string

	history []string
	histIdx int
	draft   string

	// recordHistory persists an entered line; nil when the store is
	// unavailable.
	recordHistory func(string)

	width  int
	height int
	ready  bool
}

// NewApp creates the session model. history seeds the prompt history,
// oldest first.
func NewApp(sess *commands.Session, registry *commands.Registry, history []string, recordHistory func(string)) *App {
	s := styles.NewStyles()

	input := textinput.New()
	input.Placeholder = "Type a command, e.g. add Ann 5551212"
	input.CharLimit = 200
	input.ShowSuggestions = true
	input.SetSuggestions(registry.Names())
	// Up/down drive the command history, not suggestion cycling
	input.KeyMap.NextSuggestion.SetEnabled(false)
	input.KeyMap.PrevSuggestion.SetEnabled(false)
	input.Focus()

	app := &App{
		sess:          sess,
		registry:      registry,
		styles:        s,
		keys:          defaultKeyMap(),
		input:         input,
		history:       history,
		histIdx:       len(history),
		recordHistory: recordHistory,
	}
	app.greet()
	return app
}

func (a *App) greet() {
	a.transcript = append(a.transcript,
		a.styles.Title.Render("Welcome to the assistant bot!"),
		a.styles.Hint.Render("Type 'help' for commands. 'close' or 'exit' saves and quits."),
		"",
	)
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		a.input.Width = contentWidth - 6
		vpHeight := max(msg.Height-6, 1)
		if !a.ready {
			a.viewport = viewport.New(contentWidth, vpHeight)
			a.ready = true
		} else {
			a.viewport.Width = contentWidth
			a.viewport.Height = vpHeight
		}
		a.refreshViewport()
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Submit):
			return a.submit()
		case key.Matches(msg, a.keys.HistoryPrev):
			a.historyPrev()
			return a, nil
		case key.Matches(msg, a.keys.HistoryNext):
			a.historyNext()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(a.input.Value())
	if line == "" {
		return a, nil
	}

	a.pushHistory(line)
	a.input.Reset()

	echo := a.styles.Prompt.Render("> ") + a.styles.Echo.Render(line)
	name, _ := commands.Split(line)

	if commands.IsExit(name) {
		a.appendBlock(echo, a.styles.Success.Render("Good bye!"))
		return a, tea.Quit
	}

	out, err := a.registry.Dispatch(line, a.sess)
	switch {
	case err != nil:
		a.appendBlock(echo, a.styles.Error.Render(err.Error()))
	case out != "":
		a.appendBlock(echo, a.styles.Output.Render(out))
	default:
		a.appendBlock(echo)
	}
	return a, nil
}

func (a *App) appendBlock(lines ...string) {
	a.transcript = append(a.transcript, lines...)
	a.transcript = append(a.transcript, "")
	a.refreshViewport()
}

func (a *App) refreshViewport() {
	if !a.ready {
		return
	}
	a.viewport.SetContent(strings.Join(a.transcript, "\n"))
	a.viewport.GotoBottom()
}

func (a *App) pushHistory(line string) {
	if len(a.history) == 0 || a.history[len(a.history)-1] != line {
		a.history = append(a.history, line)
		if a.recordHistory != nil {
			a.recordHistory(line)
		}
	}
	a.histIdx = len(a.history)
	a.draft = ""
}

func (a *App) historyPrev() {
	if a.histIdx == 0 {
		return
	}
	if a.histIdx == len(a.history) {
		a.draft = a.input.Value()
	}
	a.histIdx--
	a.input.SetValue(a.history[a.histIdx])
	a.input.CursorEnd()
}

func (a *App) historyNext() {
	if a.histIdx >= len(a.history) {
		return
	}
	a.histIdx++
	if a.histIdx == len(a.history) {
		a.input.SetValue(a.draft)
	} else {
		a.input.SetValue(a.history[a.histIdx])
	}
	a.input.CursorEnd()
}

func (a *App) View() string {
	if !a.ready {
		return ""
	}

	title := a.styles.Title.Render("abook") +
		a.styles.TitleMuted.Render(" · contacts and notes")
	inputBox := a.styles.InputFocused.
		Width(styles.ContentWidth(a.width) - 2).
		Render(a.input.View())
	help := a.styles.Help.Render("tab complete · ↑/↓ history · ctrl+c quit")

	return title + "\n" + a.viewport.View() + "\n" + inputBox + "\n" + help
}
