package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/ffi-boundary/coerce"
	"github.com/wippyai/ffi-boundary/stack"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectType modelState = iota
	stateInputValue
	stateShowResult
)

type inspectorModel struct {
	err      error
	targets  []coerce.Descriptor
	input    textinput.Model
	result   string
	selected int
	state    modelState
}

func newInspectorModel() *inspectorModel {
	return &inspectorModel{
		targets: coerce.Descriptors(),
		state:   stateSelectType,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputValue {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectType && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectType && m.selected < len(m.targets)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectType:
				m.prepareInput()
				m.state = stateInputValue

			case stateInputValue:
				m.convert()
				m.state = stateShowResult

			case stateShowResult:
				m.state = stateSelectType
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputValue:
				m.state = stateSelectType
			case stateShowResult:
				m.state = stateSelectType
				m.result = ""
				m.err = nil
			}
		}
	}

	if m.state == stateInputValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectorModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = "value"
	ti.Prompt = m.targets[m.selected].String() + " <- "
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

func (m *inspectorModel) convert() {
	target := m.targets[m.selected]
	value := parseValue(m.input.Value())

	out, err := coerce.Convert(value, target)
	if err != nil {
		m.err = err
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%v (%T)", out, out)
	if target != coerce.DescText {
		if slot, err := stack.Lower(target, out); err == nil {
			fmt.Fprintf(&b, "\nslot: 0x%016x", slot)
		}
	}
	m.result = b.String()
	m.err = nil
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Boundary Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString("Select a target type:\n\n")
		for i, d := range m.targets {
			line := "  " + d.String()
			if i == m.selected {
				line = selectedStyle.Render("> " + d.String())
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputValue:
		b.WriteString("Target ")
		b.WriteString(typeStyle.Render(m.targets[m.selected].String()))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter convert • esc back"))

	case stateShowResult:
		b.WriteString("Conversion to ")
		b.WriteString(typeStyle.Render(m.targets[m.selected].String()))
		b.WriteString(":\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInspectorModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
