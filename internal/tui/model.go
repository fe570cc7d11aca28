package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rlm/internal/domain"
)

// Model is the Bubble Tea model for the interactive chat loop.
type Model struct {
	assistant domain.Assistant
	input     textinput.Model
	viewport  viewport.Model
	answer    string
	banner    string
	overview  string
	status    string
	ready     bool
	history   []string
	histPos   int
}

// New creates a new TUI model instance.
func New(assistant domain.Assistant, banner string) Model {
	ti := textinput.New()
	ti.Prompt = "You: "
	ti.Placeholder = "Ask a question, or type 'exit' to quit"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		assistant: assistant,
		input:     ti,
		viewport:  vp,
		banner:    banner,
		status:    "RLM Chatbot ready.",
	}
}

// WithOverview sets the text shown before the first answer.
func (m Model) WithOverview(overview string) Model {
	m.overview = overview
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ah := answerBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header+banner, status, query box, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-ah)
		m.viewport.SetContent(m.renderAnswer())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q == "" {
				return m, nil
			}
			if IsExit(q) {
				m.status = "Goodbye!"
				return m, tea.Quit
			}
			m.answer = m.assistant.Answer(q)
			m.history = append(m.history, q)
			m.histPos = len(m.history)
			m.status = fmt.Sprintf("Answered %q", q)
			m.input.SetValue("")
			m.viewport.SetContent(m.renderAnswer())
			m.viewport.GotoTop()
			return m, nil
		case "up":
			if m.histPos > 0 {
				m.histPos--
				m.input.SetValue(m.history[m.histPos])
				m.input.CursorEnd()
			}
			return m, nil
		case "down":
			if m.histPos < len(m.history)-1 {
				m.histPos++
				m.input.SetValue(m.history[m.histPos])
				m.input.CursorEnd()
			} else {
				m.histPos = len(m.history)
				m.input.SetValue("")
			}
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the current answer.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("RLM Chatbot")
	banner := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.banner)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	answer := answerBoxStyle.Render(m.viewport.View())
	return header + "\n" + banner + "\n" + answer + "\n" + input + "\n" + status
}

// Answer returns the text of the last answer shown.
func (m Model) Answer() string { return m.answer }

// Status returns the status line.
func (m Model) Status() string { return m.status }

func (m Model) renderAnswer() string {
	if m.answer == "" {
		if m.overview != "" {
			return "Overview: " + m.overview
		}
		return "No answer yet."
	}
	return highlightSources(m.answer)
}

// IsExit reports whether input asks to leave the chat loop.
func IsExit(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "exit", "quit":
		return true
	}
	return false
}

var (
	answerBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	sourceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func highlightSources(answer string) string {
	lines := strings.Split(answer, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "- Source: ") {
			lines[i] = sourceStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
