package board

import "encoding/json"

// Encoders mirror the wire shapes exactly, so decode-then-encode round-trips
// the typed fields.

func EncodeUsers(users []User) ([]byte, error) {
	out := make([]userWire, 0, len(users))
	for i := range users {
		u := users[i]
		status := u.Status.String()
		out = append(out, userWire{
			FirstName: &u.FirstName,
			LastName:  &u.LastName,
			Status:    &status,
			RowID:     &u.RowID,
		})
	}
	return json.Marshal(out)
}

func EncodePosts(posts []Post) ([]byte, error) {
	out := make([]postWire, 0, len(posts))
	for i := range posts {
		p := posts[i]
		out = append(out, postWire{AuthorName: &p.AuthorName, Content: &p.Content, Date: &p.Date})
	}
	return json.Marshal(out)
}

func EncodeColumns(columns []Column) ([]byte, error) {
	out := make([]columnWire, 0, len(columns))
	for i := range columns {
		c := columns[i]
		out = append(out, columnWire{Name: &c.Name, Date: &c.Date})
	}
	return json.Marshal(out)
}
