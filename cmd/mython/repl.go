package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mython-go/pkg/driver"
	"mython-go/pkg/interpreter"
	"mython-go/pkg/parser"
	"mython-go/pkg/runtime"
)

// Mython's off-side rule means a logical program is one or more lines,
// not one expression per Enter the way a bracketed language's REPL
// works — so this REPL accumulates lines into a pending buffer and only
// parses and runs it once the user submits a blank line, the
// conventional terminal convention for indentation-sensitive input.

var (
	accentColor = lipgloss.Color("#3B82F6")
	okColor     = lipgloss.Color("#10B981")
	errColor    = lipgloss.Color("#EF4444")
	mutedColor  = lipgloss.Color("#6B7280")

	promptStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	outputStyle = lipgloss.NewStyle().Foreground(okColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	headerStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Padding(0, 1)
)

type historyEntry struct {
	source string
	output string
	isErr  bool
}

type replModel struct {
	textInput   textinput.Model
	pending     []string
	history     []historyEntry
	globals     *runtime.Environment
	width       int
	quitting    bool
	headerStyle lipgloss.Style
}

func newREPLModel(cfg *driver.RunConfig) replModel {
	prompt := "mython> "
	accent := accentColor
	if cfg != nil {
		if cfg.REPLPrompt != "" {
			prompt = cfg.REPLPrompt
		}
		if cfg.REPLAccentColor != "" {
			accent = lipgloss.Color(cfg.REPLAccentColor)
		}
	}

	promptStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	ti := textinput.New()
	ti.Placeholder = "type a statement, blank line to run..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = prompt

	return replModel{
		textInput:   ti,
		globals:     runtime.NewEnvironment(),
		headerStyle: headerStyle.Foreground(accent),
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.textInput.Width = msg.Width - 10
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))),
			key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+d"))):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			line := m.textInput.Value()
			m.textInput.SetValue("")
			if strings.TrimSpace(line) == "" && len(m.pending) > 0 {
				m = m.runPending()
				return m, nil
			}
			m.pending = append(m.pending, line)
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m replModel) runPending() replModel {
	source := strings.Join(m.pending, "\n") + "\n"
	m.pending = nil

	program, err := parser.ParseProgram(source)
	if err != nil {
		m.history = append(m.history, historyEntry{source: source, output: err.Error(), isErr: true})
		return m
	}
	ctx := runtime.NewBufferContext()
	ev := interpreter.New(ctx)
	if err := ev.RunWithGlobals(program, m.globals); err != nil {
		m.history = append(m.history, historyEntry{source: source, output: err.Error(), isErr: true})
		return m
	}
	m.history = append(m.history, historyEntry{source: source, output: ctx.String(), isErr: false})
	return m
}

func (m replModel) View() string {
	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder
	b.WriteString(m.headerStyle.Render("Mython REPL") + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", 40)) + "\n\n")

	for _, entry := range m.history {
		b.WriteString(mutedStyle.Render(entry.source))
		if entry.isErr {
			b.WriteString(errorStyle.Render(entry.output) + "\n")
		} else if entry.output != "" {
			b.WriteString(outputStyle.Render(entry.output))
		}
		b.WriteString("\n")
	}

	for _, line := range m.pending {
		b.WriteString(mutedStyle.Render(line) + "\n")
	}

	b.WriteString(m.textInput.View() + "\n")
	b.WriteString(mutedStyle.Render("ctrl+c to quit · blank line runs the buffered program\n"))
	return b.String()
}

func runRepl(args []string, cfg *driver.RunConfig) int {
	if len(args) != 0 {
		fmt.Println("mython repl takes no arguments")
		return 1
	}
	p := tea.NewProgram(newREPLModel(cfg))
	if _, err := p.Run(); err != nil {
		fmt.Println(err)
		return 1
	}
	return 0
}
