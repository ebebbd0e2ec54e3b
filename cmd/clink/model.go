package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sewbacca/clink/pkg/lineedit"
)

const prompt = "clink> "

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	menuStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// model is the terminal UI around one lineedit.Editor: it forwards keys to
// the buffer, binds Tab to complete-common-prefix and Alt-* to insert-all,
// and renders the current candidate menu below the line.
type model struct {
	editor    *lineedit.Editor
	menu      []string
	submitted []string
	quitting  bool
}

func newModel(editor *lineedit.Editor) model {
	return model{editor: editor}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	buffer := m.editor.Buffer()

	switch keyMsg.Type {
	case tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlC:
		buffer.Clear()
		m.menu = nil

	case tea.KeyEnter:
		m.submitted = append(m.submitted, prompt+buffer.Text())
		buffer.Clear()
		m.menu = nil

	case tea.KeyTab:
		m.editor.CompleteCommonPrefix()
		m.menu = m.editor.Candidates()

	case tea.KeyBackspace:
		buffer.Backspace()
		m.menu = nil

	case tea.KeyLeft:
		buffer.CursorLeft()

	case tea.KeyRight:
		buffer.CursorRight()

	case tea.KeyHome:
		buffer.CursorStart()

	case tea.KeyEnd:
		buffer.CursorEnd()

	case tea.KeySpace:
		buffer.Insert(" ")
		m.menu = nil

	case tea.KeyRunes:
		if keyMsg.Alt && string(keyMsg.Runes) == "*" {
			m.editor.InsertAllCandidates()
			m.menu = nil
			break
		}
		buffer.Insert(string(keyMsg.Runes))
		m.menu = nil
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var view strings.Builder
	for _, line := range m.submitted {
		view.WriteString(line)
		view.WriteString("\n")
	}

	view.WriteString(promptStyle.Render(prompt))
	view.WriteString(renderLine(m.editor.Buffer()))
	view.WriteString("\n")

	if len(m.menu) > 0 {
		view.WriteString(menuStyle.Render(strings.Join(m.menu, "  ")))
		view.WriteString("\n")
	}

	view.WriteString(helpStyle.Render("tab: complete  alt-*: insert all  ctrl-d: exit"))
	view.WriteString("\n")
	return view.String()
}

// renderLine draws the buffer content with a block cursor.
func renderLine(buffer *lineedit.Buffer) string {
	text := buffer.Text()
	pos := buffer.Pos()
	if pos >= len(text) {
		return text + cursorStyle.Render(" ")
	}
	return text[:pos] + cursorStyle.Render(string(text[pos])) + text[pos+1:]
}
