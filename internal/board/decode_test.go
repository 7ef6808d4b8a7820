package board

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

const validUsersPayload = `[
	{"first_name": "Ada", "last_name": "Lovelace", "status": "AVAILABLE", "rowid": 1},
	{"first_name": "Alan", "last_name": "Turing", "status": "DISCONNECTED", "rowid": 2}
]`

func TestDecodeUsersValid(t *testing.T) {
	users, err := DecodeUsers([]byte(validUsersPayload))
	if err != nil {
		t.Fatalf("DecodeUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].LastName != "Lovelace" || users[0].Status != StatusAvailable || users[0].RowID != 1 {
		t.Errorf("first user = %+v", users[0])
	}
	if users[1].Status != StatusDisconnected {
		t.Errorf("second user status = %v, want DISCONNECTED", users[1].Status)
	}
}

func TestDecodeUsersRoundTrip(t *testing.T) {
	users, err := DecodeUsers([]byte(validUsersPayload))
	if err != nil {
		t.Fatalf("DecodeUsers: %v", err)
	}
	encoded, err := EncodeUsers(users)
	if err != nil {
		t.Fatalf("EncodeUsers: %v", err)
	}
	again, err := DecodeUsers(encoded)
	if err != nil {
		t.Fatalf("DecodeUsers after encode: %v", err)
	}
	if len(again) != len(users) {
		t.Fatalf("round trip length = %d, want %d", len(again), len(users))
	}
	for i := range users {
		if again[i] != users[i] {
			t.Errorf("user %d round trip = %+v, want %+v", i, again[i], users[i])
		}
	}
}

func TestDecodeUsersBadStatus(t *testing.T) {
	payload := `[{"first_name": "Ada", "last_name": "Lovelace", "status": "unknown", "rowid": 1}]`
	_, err := DecodeUsers([]byte(payload))
	if err == nil {
		t.Fatal("expected decode error for bad status")
	}
	if !strings.Contains(err.Error(), `"unknown"`) {
		t.Errorf("error should name the offending value, got: %v", err)
	}
}

func TestDecodeUsersCaseSensitiveStatus(t *testing.T) {
	payload := `[{"first_name": "Ada", "last_name": "Lovelace", "status": "available", "rowid": 1}]`
	if _, err := DecodeUsers([]byte(payload)); err == nil {
		t.Fatal("lowercase status should not decode")
	}
}

func TestDecodeUsersMissingField(t *testing.T) {
	payload := `[{"first_name": "Ada", "status": "AVAILABLE", "rowid": 1}]`
	_, err := DecodeUsers([]byte(payload))
	if err == nil {
		t.Fatal("expected decode error for missing last_name")
	}
	if !strings.Contains(err.Error(), `"last_name"`) {
		t.Errorf("error should name the missing field, got: %v", err)
	}
}

func TestDecodeUsersMistypedRowID(t *testing.T) {
	payload := `[{"first_name": "Ada", "last_name": "Lovelace", "status": "AVAILABLE", "rowid": "1"}]`
	_, err := DecodeUsers([]byte(payload))
	if err == nil {
		t.Fatal("expected decode error for string rowid")
	}
	if !strings.Contains(err.Error(), "rowid") {
		t.Errorf("error should name the field, got: %v", err)
	}
}

func TestDecodeUsersDuplicateRowID(t *testing.T) {
	payload := `[
		{"first_name": "Ada", "last_name": "Lovelace", "status": "AVAILABLE", "rowid": 1},
		{"first_name": "Alan", "last_name": "Turing", "status": "AVAILABLE", "rowid": 1}
	]`
	if _, err := DecodeUsers([]byte(payload)); err == nil {
		t.Fatal("expected decode error for duplicate rowid")
	}
}

func TestDecodeUsersWholeListFails(t *testing.T) {
	payload := `[
		{"first_name": "Ada", "last_name": "Lovelace", "status": "AVAILABLE", "rowid": 1},
		{"first_name": "Alan", "last_name": "Turing", "status": "nope", "rowid": 2}
	]`
	users, err := DecodeUsers([]byte(payload))
	if err == nil {
		t.Fatal("one bad element must fail the whole list")
	}
	if users != nil {
		t.Errorf("failed decode must not return partial data, got %d users", len(users))
	}
}

func TestDecodeUsersNotAList(t *testing.T) {
	if _, err := DecodeUsers([]byte(`{"first_name": "Ada"}`)); err == nil {
		t.Fatal("object payload should not decode as a list")
	}
}

// ---------------------------------------------------------------------------
// Posts
// ---------------------------------------------------------------------------

func TestDecodePostsValid(t *testing.T) {
	payload := `[
		{"author_name": "ada", "content": "shipping today", "date": "2026-08-30"},
		{"author_name": "alan", "content": "lgtm", "date": "2026-08-31"}
	]`
	posts, err := DecodePosts([]byte(payload))
	if err != nil {
		t.Fatalf("DecodePosts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].AuthorName != "ada" || posts[1].Content != "lgtm" {
		t.Errorf("posts = %+v", posts)
	}
}

func TestDecodePostsOrderPreserved(t *testing.T) {
	payload := `[
		{"author_name": "z", "content": "last alphabetically, first delivered", "date": "2026-01-02"},
		{"author_name": "a", "content": "first alphabetically", "date": "2026-01-01"}
	]`
	posts, err := DecodePosts([]byte(payload))
	if err != nil {
		t.Fatalf("DecodePosts: %v", err)
	}
	if posts[0].AuthorName != "z" {
		t.Error("posts must keep delivery order, not re-sort")
	}
}

func TestDecodePostsMissingField(t *testing.T) {
	payload := `[{"author_name": "ada", "date": "2026-08-30"}]`
	_, err := DecodePosts([]byte(payload))
	if err == nil {
		t.Fatal("expected decode error for missing content")
	}
	if !strings.Contains(err.Error(), `"content"`) {
		t.Errorf("error should name the missing field, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Columns
// ---------------------------------------------------------------------------

func TestDecodeColumnsValid(t *testing.T) {
	payload := `[{"columnName": "Doing", "date": "2026-08-01"}, {"columnName": "Done", "date": "2026-08-02"}]`
	columns, err := DecodeColumns([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeColumns: %v", err)
	}
	if len(columns) != 2 || columns[0].Name != "Doing" {
		t.Errorf("columns = %+v", columns)
	}
}

func TestDecodeColumnsMissingName(t *testing.T) {
	_, err := DecodeColumns([]byte(`[{"date": "2026-08-01"}]`))
	if err == nil {
		t.Fatal("expected decode error for missing columnName")
	}
	if !strings.Contains(err.Error(), `"columnName"`) {
		t.Errorf("error should name the missing field, got: %v", err)
	}
}

func TestDecodeEmptyLists(t *testing.T) {
	for _, tc := range []struct {
		name   string
		decode func([]byte) (int, error)
	}{
		{"users", func(b []byte) (int, error) { v, err := DecodeUsers(b); return len(v), err }},
		{"posts", func(b []byte) (int, error) { v, err := DecodePosts(b); return len(v), err }},
		{"columns", func(b []byte) (int, error) { v, err := DecodeColumns(b); return len(v), err }},
	} {
		n, err := tc.decode([]byte(`[]`))
		if err != nil {
			t.Errorf("%s: empty list should decode, got %v", tc.name, err)
		}
		if n != 0 {
			t.Errorf("%s: expected 0 elements, got %d", tc.name, n)
		}
	}
}
