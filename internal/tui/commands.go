package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Commands are the model's declared effects: Update never performs IO itself,
// it hands one of these back to the runtime.

// submitPostCmd sends the draft and yields exactly one submitDoneMsg,
// success or failure. No retry, no cancellation of in-flight sends.
func submitPostCmd(api Submitter, content string) tea.Cmd {
	return func() tea.Msg {
		id, err := api.SubmitPost(context.Background(), content)
		return submitDoneMsg{id: id, err: err}
	}
}

func addColumnCmd(api Submitter, name string) tea.Cmd {
	return func() tea.Msg {
		err := api.AddColumn(context.Background(), name)
		return columnAddedMsg{name: name, err: err}
	}
}

// logDecodeFailureCmd writes the decode failure to the diagnostic sink. The
// dropped snapshot is not recoverable; the next good push replaces it.
func logDecodeFailureCmd(log zerolog.Logger, err error) tea.Cmd {
	return func() tea.Msg {
		log.Error().Err(err).Msg("feed snapshot dropped")
		return nil
	}
}
