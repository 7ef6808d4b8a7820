package feed

import "github.com/jask/huddle/internal/board"

// Event is one inbound update from the host, already validated. Decode
// failures travel the same channel as good snapshots so the consumer can
// route everything through a single dispatcher.
type Event interface {
	feedEvent()
}

// UsersEvent carries a full replacement snapshot of the members list.
type UsersEvent struct {
	Users []board.User
}

// PostsEvent carries a full replacement snapshot of the posts list.
type PostsEvent struct {
	Posts []board.Post
}

// ColumnsEvent carries a full replacement snapshot of the columns list.
type ColumnsEvent struct {
	Columns []board.Column
}

// DecodeFailedEvent reports a malformed payload on one feed. The other feeds
// are unaffected and the snapshot that failed is dropped.
type DecodeFailedEvent struct {
	Err error
}

// ClosedEvent is emitted once when the read loop ends. Err is nil on a clean
// close.
type ClosedEvent struct {
	Err error
}

func (UsersEvent) feedEvent()        {}
func (PostsEvent) feedEvent()        {}
func (ColumnsEvent) feedEvent()      {}
func (DecodeFailedEvent) feedEvent() {}
func (ClosedEvent) feedEvent()       {}
