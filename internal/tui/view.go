package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/huddle/internal/board"
)

// View is a pure function of the model: same model, same frame.
func (m Model) View() string {
	header := m.renderHeader()
	compose := m.renderCompose()
	status := m.renderStatusBar()
	footer := m.renderFooter()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(compose) -
		lipgloss.Height(status) - lipgloss.Height(footer)
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	body := m.renderPanes(bodyHeight)

	return strings.Join([]string{header, body, compose, status, footer}, "\n")
}

func (m Model) renderHeader() string {
	left := headerAppStyle.Render(appName)
	return renderBar(headerBarStyle, m.width, left)
}

// ---------------------------------------------------------------------------
// Panes
// ---------------------------------------------------------------------------

func (m Model) renderPanes(height int) string {
	sideWidth := m.width / 4
	if sideWidth < 20 {
		sideWidth = 20
	}
	centerWidth := m.width - 2*sideWidth
	if centerWidth < 20 {
		centerWidth = 20
	}
	inner := height - 2 // pane border

	members := m.renderPane("Members", m.memberRows(), sideWidth, inner)
	posts := m.renderPane("Posts", m.postRows(), centerWidth, inner)
	columns := m.renderPane("Columns", m.columnRows(), sideWidth, inner)

	return lipgloss.JoinHorizontal(lipgloss.Top, members, posts, columns)
}

func (m Model) renderPane(title string, rows []string, width, height int) string {
	contentWidth := width - 4 // border + padding
	if contentWidth < 1 {
		contentWidth = 1
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, paneTitleStyle.Render(title))
	for _, row := range rows {
		lines = append(lines, ansi.Truncate(row, contentWidth, "…"))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return paneStyle.Width(width - 2).Height(height).Render(strings.Join(lines, "\n"))
}

func (m Model) memberRows() []string {
	rows := make([]string, 0, len(m.users))
	for _, u := range m.users {
		rows = append(rows, m.statusGlyph(u.Status)+" "+u.LastName)
	}
	if len(rows) == 0 {
		return []string{mutedStyle.Render("Nobody here yet")}
	}
	return rows
}

func (m Model) statusGlyph(s board.Status) string {
	if s == board.StatusAvailable {
		return availableGlyphStyle.Render(m.availableGlyph)
	}
	return disconnectedGlyphStyle.Render(m.disconnectedGlyph)
}

func (m Model) postRows() []string {
	rows := make([]string, 0, len(m.posts))
	for _, p := range m.posts {
		rows = append(rows, authorStyle.Render(p.AuthorName)+" "+p.Content+" "+dateStyle.Render(p.Date))
	}
	if len(rows) == 0 {
		return []string{mutedStyle.Render("No posts yet")}
	}
	return rows
}

func (m Model) columnRows() []string {
	rows := make([]string, 0, len(m.columns))
	for _, c := range m.columns {
		rows = append(rows, c.Name+" "+dateStyle.Render(c.Date))
	}
	if len(rows) == 0 {
		return []string{mutedStyle.Render("No columns yet")}
	}
	return rows
}

// ---------------------------------------------------------------------------
// Compose line, status bar, footer
// ---------------------------------------------------------------------------

func (m Model) renderCompose() string {
	if m.mode == modeColumn {
		return composeLabelStyle.Render("New column") + " " + m.columnInput.View()
	}
	return composeLabelStyle.Render("New post") + " " + m.input.View()
}

func (m Model) renderStatusBar() string {
	text := m.status
	if !m.connected {
		text = "Disconnected. " + text
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, m.width, text)
	}
	return renderBar(statusBarStyle, m.width, text)
}

func (m Model) renderFooter() string {
	bindings := m.keys.composeHelp()
	if m.mode == modeColumn {
		bindings = m.keys.columnHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+h.Desc)
	}
	return renderBar(footerStyle, m.width, strings.Join(parts, "  "))
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), max(1, width-4), "")
	return style.Width(max(1, width)).MaxWidth(max(1, width)).Render(line)
}
