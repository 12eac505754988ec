package main

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benjson/benjson"
	"github.com/benjson/benjson/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	input  textinput.Model
	result string
	diag   []string
	hasRun bool
	failed bool
}

func newInspectorModel() *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "d3:cow3:mooe"
	ti.Prompt = "bencode> "
	ti.Width = 60
	ti.Focus()
	return &inspectorModel{input: ti}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.transcode()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectorModel) transcode() {
	m.hasRun = true
	m.diag = nil

	out, err := benjson.TranscodeBytes([]byte(m.input.Value()))
	if err == nil {
		m.failed = false
		m.result = string(out)
		return
	}

	m.failed = true
	m.result = err.Error()

	var e *errors.Error
	if stderrors.As(err, &e) {
		m.diag = append(m.diag,
			fmt.Sprintf("token: %s", e.Token),
			fmt.Sprintf("kind: %s", e.Kind),
			fmt.Sprintf("input: position %d, tail %q", e.Read.Pos, e.Read.Latest),
			fmt.Sprintf("output: position %d, tail %q", e.Write.Pos, e.Write.Latest),
		)
		if e.Read.Byte != nil {
			m.diag = append(m.diag, fmt.Sprintf("offending byte: 0x%02x (%q)", *e.Read.Byte, string(rune(*e.Read.Byte))))
		}
		if e.Cause != nil {
			m.diag = append(m.diag, fmt.Sprintf("cause: %v", e.Cause))
		}
	}
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Bencode Inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.hasRun {
		if m.failed {
			b.WriteString(errorStyle.Render(m.result))
			b.WriteString("\n")
			for _, line := range m.diag {
				b.WriteString("  ")
				b.WriteString(labelStyle.Render(line))
				b.WriteString("\n")
			}
		} else {
			b.WriteString(resultStyle.Render(m.result))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter transcode • esc quit"))
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInspectorModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
