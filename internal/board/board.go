// Package board holds the huddle board entities and the decoders that
// validate raw feed payloads into them.
package board

// Feed names as they appear in host envelopes.
const (
	FeedUsers   = "users"
	FeedPosts   = "posts"
	FeedColumns = "columns"
)

// Status is a member's presence state.
type Status int

const (
	StatusDisconnected Status = iota
	StatusAvailable
)

// Wire values for Status. Matching is exact and case-sensitive.
const (
	statusWireAvailable    = "AVAILABLE"
	statusWireDisconnected = "DISCONNECTED"
)

func (s Status) String() string {
	if s == StatusAvailable {
		return statusWireAvailable
	}
	return statusWireDisconnected
}

// User is one row in the members list. RowID is unique within a snapshot.
type User struct {
	FirstName string
	LastName  string
	Status    Status
	RowID     int
}

// Post is immutable once received; list order is feed delivery order.
type Post struct {
	AuthorName string
	Content    string
	Date       string
}

// Column is one board column.
type Column struct {
	Name string
	Date string
}
