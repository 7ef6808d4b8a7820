// Package tui is the huddle board UI: one immutable model, one update
// function, one pure view. Every state change arrives as a message and is
// applied in Update, nowhere else.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/huddle/internal/board"
	"github.com/jask/huddle/internal/config"
)

const appName = "Huddle"

// Submitter issues outbound submissions. The api client implements it; tests
// substitute a recorder.
type Submitter interface {
	SubmitPost(ctx context.Context, content string) (string, error)
	AddColumn(ctx context.Context, name string) error
}

type inputMode int

const (
	modeCompose inputMode = iota
	modeColumn
)

// Model is the full application snapshot. The three lists are replaced
// wholesale by feed messages; draft is the only field local input touches.
type Model struct {
	users   []board.User
	posts   []board.Post
	columns []board.Column
	draft   string

	input       textinput.Model
	columnInput textinput.Model
	mode        inputMode

	keys      keyMap
	width     int
	height    int
	connected bool
	status    string
	statusErr bool

	availableGlyph    string
	disconnectedGlyph string

	api Submitter
	log zerolog.Logger
}

func New(cfg config.Config, api Submitter, log zerolog.Logger) Model {
	input := textinput.New()
	input.Placeholder = "Share something with the team"
	input.Prompt = "> "
	input.Focus()

	columnInput := textinput.New()
	columnInput.Placeholder = "Column name"
	columnInput.Prompt = "> "

	return Model{
		input:             input,
		columnInput:       columnInput,
		keys:              newKeyMap(),
		width:             100,
		height:            32,
		connected:         true,
		status:            "Ready",
		availableGlyph:    cfg.UI.AvailableGlyph,
		disconnectedGlyph: cfg.UI.DisconnectedGlyph,
		api:               api,
		log:               log,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Draft exposes the current draft text.
func (m Model) Draft() string {
	return m.draft
}
