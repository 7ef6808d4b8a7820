package board

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DecodeError reports a malformed feed payload. It names the field or value
// at fault so the diagnostic log is actionable; it never carries partial data.
type DecodeError struct {
	Feed   string
	Detail string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s feed: %s", e.Feed, e.Detail)
}

func decodeErrf(feed, format string, args ...any) error {
	return &DecodeError{Feed: feed, Detail: fmt.Sprintf(format, args...)}
}

// Wire structs use pointer fields so a missing key is distinguishable from a
// zero value.

type userWire struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Status    *string `json:"status"`
	RowID     *int    `json:"rowid"`
}

type postWire struct {
	AuthorName *string `json:"author_name"`
	Content    *string `json:"content"`
	Date       *string `json:"date"`
}

type columnWire struct {
	Name *string `json:"columnName"`
	Date *string `json:"date"`
}

// DecodeUsers validates a full users snapshot. Any failing element fails the
// whole list; a valid result is the complete replacement for the model's
// users field.
func DecodeUsers(raw []byte) ([]User, error) {
	elems, err := decodeList(FeedUsers, raw)
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(elems))
	seen := make(map[int]bool, len(elems))
	for i, el := range elems {
		var w userWire
		if err := json.Unmarshal(el, &w); err != nil {
			return nil, elemError(FeedUsers, i, err)
		}
		if w.FirstName == nil {
			return nil, decodeErrf(FeedUsers, "element %d: missing or invalid field %q", i, "first_name")
		}
		if w.LastName == nil {
			return nil, decodeErrf(FeedUsers, "element %d: missing or invalid field %q", i, "last_name")
		}
		if w.Status == nil {
			return nil, decodeErrf(FeedUsers, "element %d: missing or invalid field %q", i, "status")
		}
		if w.RowID == nil {
			return nil, decodeErrf(FeedUsers, "element %d: missing or invalid field %q", i, "rowid")
		}
		status, err := parseStatus(*w.Status)
		if err != nil {
			return nil, decodeErrf(FeedUsers, "element %d: %v", i, err)
		}
		if seen[*w.RowID] {
			return nil, decodeErrf(FeedUsers, "element %d: duplicate rowid %d", i, *w.RowID)
		}
		seen[*w.RowID] = true
		users = append(users, User{
			FirstName: *w.FirstName,
			LastName:  *w.LastName,
			Status:    status,
			RowID:     *w.RowID,
		})
	}
	return users, nil
}

// DecodePosts validates a full posts snapshot, preserving delivery order.
func DecodePosts(raw []byte) ([]Post, error) {
	elems, err := decodeList(FeedPosts, raw)
	if err != nil {
		return nil, err
	}
	posts := make([]Post, 0, len(elems))
	for i, el := range elems {
		var w postWire
		if err := json.Unmarshal(el, &w); err != nil {
			return nil, elemError(FeedPosts, i, err)
		}
		if w.AuthorName == nil {
			return nil, decodeErrf(FeedPosts, "element %d: missing or invalid field %q", i, "author_name")
		}
		if w.Content == nil {
			return nil, decodeErrf(FeedPosts, "element %d: missing or invalid field %q", i, "content")
		}
		if w.Date == nil {
			return nil, decodeErrf(FeedPosts, "element %d: missing or invalid field %q", i, "date")
		}
		posts = append(posts, Post{AuthorName: *w.AuthorName, Content: *w.Content, Date: *w.Date})
	}
	return posts, nil
}

// DecodeColumns validates a full columns snapshot.
func DecodeColumns(raw []byte) ([]Column, error) {
	elems, err := decodeList(FeedColumns, raw)
	if err != nil {
		return nil, err
	}
	columns := make([]Column, 0, len(elems))
	for i, el := range elems {
		var w columnWire
		if err := json.Unmarshal(el, &w); err != nil {
			return nil, elemError(FeedColumns, i, err)
		}
		if w.Name == nil {
			return nil, decodeErrf(FeedColumns, "element %d: missing or invalid field %q", i, "columnName")
		}
		if w.Date == nil {
			return nil, decodeErrf(FeedColumns, "element %d: missing or invalid field %q", i, "date")
		}
		columns = append(columns, Column{Name: *w.Name, Date: *w.Date})
	}
	return columns, nil
}

func parseStatus(s string) (Status, error) {
	switch s {
	case statusWireAvailable:
		return StatusAvailable, nil
	case statusWireDisconnected:
		return StatusDisconnected, nil
	default:
		return 0, fmt.Errorf("bad status value %q", s)
	}
}

func decodeList(feed string, raw []byte) ([]json.RawMessage, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, decodeErrf(feed, "payload is not a list: %v", err)
	}
	return elems, nil
}

// elemError converts an element-level unmarshal error into a DecodeError,
// keeping the offending json field name when the stdlib reports one.
func elemError(feed string, i int, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return decodeErrf(feed, "element %d: missing or invalid field %q", i, typeErr.Field)
	}
	return decodeErrf(feed, "element %d: %v", i, err)
}
