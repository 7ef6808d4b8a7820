package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/huddle/internal/board"
	"github.com/jask/huddle/internal/feed"
)

type usersMsg struct {
	users []board.User
}

type postsMsg struct {
	posts []board.Post
}

type columnsMsg struct {
	columns []board.Column
}

type draftMsg struct {
	text string
}

type submitMsg struct{}

type decodeFailedMsg struct {
	err error
}

type submitDoneMsg struct {
	id  string
	err error
}

type columnAddedMsg struct {
	name string
	err  error
}

type feedClosedMsg struct {
	err error
}

// FeedMsg converts a feed event into the message this model understands.
// The cmd wiring pumps every inbound event through here so the whole host
// stream enters the one update function in arrival order.
func FeedMsg(ev feed.Event) tea.Msg {
	switch ev := ev.(type) {
	case feed.UsersEvent:
		return usersMsg{users: ev.Users}
	case feed.PostsEvent:
		return postsMsg{posts: ev.Posts}
	case feed.ColumnsEvent:
		return columnsMsg{columns: ev.Columns}
	case feed.DecodeFailedEvent:
		return decodeFailedMsg{err: ev.Err}
	case feed.ClosedEvent:
		return feedClosedMsg{err: ev.Err}
	}
	return nil
}
