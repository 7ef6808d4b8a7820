package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/huddle/internal/board"
)

func sizedModel(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 120, Height: 36})
	return m
}

func TestViewDeterministic(t *testing.T) {
	m := sizedModel(t, newTestModel(&recordingAPI{}))
	m, _ = apply(t, m, usersMsg{users: testUsers()})
	m, _ = apply(t, m, postsMsg{posts: testPosts()})

	first := m.View()
	second := m.View()
	if first != second {
		t.Error("rendering the same model twice must produce identical frames")
	}
}

func TestViewAvailableGlyph(t *testing.T) {
	m := sizedModel(t, newTestModel(&recordingAPI{}))
	m, _ = apply(t, m, usersMsg{users: []board.User{
		{FirstName: "Ada", LastName: "Lovelace", Status: board.StatusAvailable, RowID: 1},
	}})

	frame := m.View()
	if !strings.Contains(frame, "●") {
		t.Error("available member should render the available glyph")
	}
	if strings.Contains(frame, "○") {
		t.Error("no disconnected member, so no disconnected glyph")
	}
	if !strings.Contains(frame, "Lovelace") {
		t.Error("member row should show the last name")
	}
	if strings.Contains(frame, "Ada") {
		t.Error("member row shows last name only")
	}
}

func TestViewDisconnectedGlyph(t *testing.T) {
	m := sizedModel(t, newTestModel(&recordingAPI{}))
	m, _ = apply(t, m, usersMsg{users: []board.User{
		{FirstName: "Alan", LastName: "Turing", Status: board.StatusDisconnected, RowID: 1},
	}})

	if !strings.Contains(m.View(), "○") {
		t.Error("disconnected member should render the disconnected glyph")
	}
}

func TestViewPostOrder(t *testing.T) {
	m := sizedModel(t, newTestModel(&recordingAPI{}))
	m, _ = apply(t, m, postsMsg{posts: []board.Post{
		{AuthorName: "z", Content: "delivered-first", Date: "2026-01-02"},
		{AuthorName: "a", Content: "delivered-second", Date: "2026-01-01"},
	}})

	frame := m.View()
	first := strings.Index(frame, "delivered-first")
	second := strings.Index(frame, "delivered-second")
	if first < 0 || second < 0 {
		t.Fatal("both posts should be rendered")
	}
	if first > second {
		t.Error("posts must render in feed order, not sorted")
	}
}

func TestViewColumns(t *testing.T) {
	m := sizedModel(t, newTestModel(&recordingAPI{}))
	m, _ = apply(t, m, columnsMsg{columns: []board.Column{
		{Name: "Doing", Date: "2026-08-01"},
		{Name: "Done", Date: "2026-08-02"},
	}})

	frame := m.View()
	if !strings.Contains(frame, "Doing") || !strings.Contains(frame, "Done") {
		t.Error("column rows should show column names")
	}
}

func TestViewComposeReflectsDraft(t *testing.T) {
	m := sizedModel(t, newTestModel(&recordingAPI{}))
	m, _ = apply(t, m, draftMsg{text: "half-written thought"})

	if !strings.Contains(m.View(), "half-written thought") {
		t.Error("compose field is controlled: it must render the model's draft")
	}
}

func TestViewDisconnectedBanner(t *testing.T) {
	m := sizedModel(t, newTestModel(&recordingAPI{}))
	m, _ = apply(t, m, feedClosedMsg{})

	if !strings.Contains(m.View(), "Disconnected") {
		t.Error("status bar should surface a lost feed connection")
	}
}
