package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"pycst/internal/source"
	"pycst/internal/token"
)

// browserModel — интерактивный просмотр потока токенов: список с курсором
// внутри viewport, внизу детали выбранного токена (span, trivia, отступы).
type browserModel struct {
	title  string
	tokens []token.Token
	fs     *source.FileSet

	vp     viewport.Model
	cursor int
	showWS bool
	ready  bool
	width  int
	height int
}

// NewBrowserModel returns a Bubble Tea model that lets the user walk the
// token stream of a single file.
func NewBrowserModel(title string, tokens []token.Token, fs *source.FileSet) tea.Model {
	return &browserModel{
		title:  title,
		tokens: tokens,
		fs:     fs,
		width:  80,
		height: 24,
	}
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "pgup":
			m.moveCursor(-m.vp.Height)
		case "pgdown", " ":
			m.moveCursor(m.vp.Height)
		case "g", "home":
			m.cursor = 0
			m.syncViewport()
		case "G", "end":
			m.cursor = len(m.tokens) - 1
			m.syncViewport()
		case "w":
			m.showWS = !m.showWS
			m.syncViewport()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// заголовок + строка статуса + блок деталей
		chrome := 2 + detailLines
		if !m.ready {
			m.vp = viewport.New(msg.Width, max(msg.Height-chrome, 3))
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = max(msg.Height-chrome, 3)
		}
		m.syncViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

const detailLines = 4

func (m *browserModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.tokens) {
		m.cursor = len(m.tokens) - 1
	}
	m.syncViewport()
}

// syncViewport перерисовывает список и держит курсор в видимой области.
func (m *browserModel) syncViewport() {
	if !m.ready || len(m.tokens) == 0 {
		return
	}
	m.vp.SetContent(m.renderList())

	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	}
	if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m *browserModel) View() string {
	if !m.ready {
		return "loading..."
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := titleStyle.Render(fmt.Sprintf("%s — %d tokens", m.title, len(m.tokens)))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.renderDetails())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(
		"j/k move · g/G first/last · w whitespace · q quit"))
	return b.String()
}

func (m *browserModel) renderList() string {
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	var b strings.Builder
	for i, tok := range m.tokens {
		line := m.renderTokenLine(i, tok)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		if i+1 < len(m.tokens) {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *browserModel) renderTokenLine(i int, tok token.Token) string {
	text := tok.Text
	if rel, ok := tok.RelativeIndent(); ok {
		text = fmt.Sprintf("rel=%q", rel)
	}
	line := fmt.Sprintf("%4d  %-12s %s", i+1, tok.Kind.String(), styleTokenText(tok).Render(fmt.Sprintf("%q", text)))
	return truncate(line, m.width)
}

func (m *browserModel) renderDetails() string {
	if len(m.tokens) == 0 {
		return strings.Repeat("\n", detailLines-1)
	}
	tok := m.tokens[m.cursor]
	start, end := m.fs.Resolve(tok.Span)

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	lines := []string{
		fmt.Sprintf("%s %s  %s [%d,%d) %d:%d-%d:%d",
			labelStyle.Render("kind:"), tok.Kind,
			labelStyle.Render("span:"), tok.Span.Start, tok.Span.End,
			start.Line, start.Col, end.Line, end.Col),
	}

	if m.showWS {
		lines = append(lines,
			fmt.Sprintf("%s %q", labelStyle.Render("before:"), tok.Before.Text()),
			fmt.Sprintf("%s %q", labelStyle.Render("after: "), tok.After.Text()),
		)
		if comments := tok.Before.Comments(); len(comments) > 0 {
			lines = append(lines, fmt.Sprintf("%s %s",
				labelStyle.Render("comments:"), strings.Join(comments, " | ")))
		}
	} else {
		lines = append(lines, fmt.Sprintf("%s %q", labelStyle.Render("text:"), tok.Text))
	}

	for len(lines) < detailLines-1 {
		lines = append(lines, "")
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines[:detailLines-1] {
		out = append(out, truncate(line, m.width))
	}
	return strings.Join(out, "\n")
}

func styleTokenText(tok token.Token) lipgloss.Style {
	switch {
	case tok.Kind == token.Invalid:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case tok.IsKeyword():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	case tok.IsLiteral():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case tok.IsVirtual():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
