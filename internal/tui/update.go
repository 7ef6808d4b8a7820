package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersMsg:
		m.users = msg.users
		return m, nil
	case postsMsg:
		m.posts = msg.posts
		return m, nil
	case columnsMsg:
		m.columns = msg.columns
		return m, nil
	case draftMsg:
		m.draft = msg.text
		if m.input.Value() != msg.text {
			m.input.SetValue(msg.text)
		}
		return m, nil
	case submitMsg:
		return m.handleSubmit()
	case decodeFailedMsg:
		// visible state untouched; the failure only reaches the log
		return m, logDecodeFailureCmd(m.log, msg.err)
	case submitDoneMsg:
		// result discarded, success or failure
		return m, nil
	case columnAddedMsg:
		if msg.err != nil {
			m.setError("Column submission failed: " + msg.err.Error())
			return m, nil
		}
		m.setStatus("Column " + msg.name + " submitted.")
		return m, nil
	case feedClosedMsg:
		m.connected = false
		m.setError("Feed connection lost.")
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleSubmit checks emptiness on the draft before clearing it. Only the
// exact empty string is a no-op; whitespace-only drafts are submitted as-is.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.draft == "" {
		return m, nil
	}
	content := m.draft
	m.draft = ""
	m.input.SetValue("")
	return m, submitPostCmd(m.api, content)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.mode == modeColumn {
		return m.handleColumnKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Submit):
		// handled inline so the submit can never overtake the draft
		// change the same keystroke sequence produced
		return m.handleSubmit()
	case key.Matches(msg, m.keys.NewColumn):
		m.mode = modeColumn
		m.input.Blur()
		m.columnInput.Focus()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.draft {
		m.draft = v
	}
	return m, cmd
}

// handleColumnKey drives the legacy column form: a fire-and-forget POST that
// never touches the lists, which only ever change via feed snapshots.
func (m Model) handleColumnKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.exitColumnMode()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		name := m.columnInput.Value()
		m.exitColumnMode()
		if name == "" {
			return m, nil
		}
		return m, addColumnCmd(m.api, name)
	}
	var cmd tea.Cmd
	m.columnInput, cmd = m.columnInput.Update(msg)
	return m, cmd
}

func (m *Model) exitColumnMode() {
	m.mode = modeCompose
	m.columnInput.SetValue("")
	m.columnInput.Blur()
	m.input.Focus()
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}
