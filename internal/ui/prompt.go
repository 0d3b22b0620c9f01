package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user leaves the prompt without answering.
var ErrCancelled = errors.New("prompt cancelled")

// PromptModel asks for today's repeat count.
type PromptModel struct {
	input     textinput.Model
	repeats   uint
	done      bool
	cancelled bool
	errorLine string

	labelStyle lipgloss.Style
	errorStyle lipgloss.Style
	hintStyle  lipgloss.Style
}

// NewPromptModel seeds the prompt with a focused, digits-only text input.
func NewPromptModel() PromptModel {
	input := textinput.New()
	input.Placeholder = "45"
	input.CharLimit = 6
	input.Width = 8
	input.Prompt = "> "
	input.Focus()

	return PromptModel{
		input:      input,
		labelStyle: lipgloss.NewStyle().Bold(true),
		errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		hintStyle:  lipgloss.NewStyle().Faint(true),
	}
}

// Init starts the cursor blinking.
func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles submission, cancellation and editing keys.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.errorLine = ""
	}
	return m, cmd
}

func (m PromptModel) submit() (tea.Model, tea.Cmd) {
	repeats, err := ParseRepeats(m.input.Value())
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	m.repeats = repeats
	m.done = true
	return m, tea.Quit
}

// View renders the prompt.
func (m PromptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.labelStyle.Render("How many pushups did you do today?"))
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	if m.errorLine != "" {
		b.WriteString(m.errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	}
	b.WriteString(m.hintStyle.Render("enter to save  esc to cancel"))
	b.WriteByte('\n')
	return b.String()
}

// Repeats returns the submitted count and whether the prompt was answered.
func (m PromptModel) Repeats() (uint, bool) {
	return m.repeats, m.done
}

// ParseRepeats validates a repeat count typed by the user or passed as an argument.
func ParseRepeats(value string) (uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("repeat count is required")
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid repeat count %q (expected a non-negative integer)", value)
	}
	return uint(n), nil
}

// Prompt runs the interactive prompt on in/out and returns the entered count.
func Prompt(ctx context.Context, in io.Reader, out io.Writer) (uint, error) {
	program := tea.NewProgram(NewPromptModel(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	if err != nil {
		return 0, fmt.Errorf("run prompt: %w", err)
	}

	model, ok := final.(PromptModel)
	if !ok {
		return 0, fmt.Errorf("run prompt: unexpected model %T", final)
	}
	repeats, answered := model.Repeats()
	if !answered {
		return 0, ErrCancelled
	}
	return repeats, nil
}
