// Package feed subscribes to the host's push feeds over a websocket and
// turns raw frames into validated events.
package feed

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/jask/huddle/internal/board"
)

// eventBuffer absorbs bursts from the host; the consumer drains continuously
// so the buffer only matters when renders momentarily lag behind pushes.
const eventBuffer = 64

// envelope is the host frame: one feed name, one full-snapshot payload.
type envelope struct {
	Feed string          `json:"feed"`
	Data json.RawMessage `json:"data"`
}

// Client reads host envelopes and delivers Events in arrival order.
type Client struct {
	conn   *websocket.Conn
	log    zerolog.Logger
	events chan Event
}

// Dial connects to the host feed endpoint. The caller starts the read loop
// with Run and consumes Events until the channel closes.
func Dial(url string, log zerolog.Logger) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial feed host %s: %w", url, err)
	}
	return &Client{
		conn:   conn,
		log:    log,
		events: make(chan Event, eventBuffer),
	}, nil
}

// Events is the inbound event stream. It is closed after ClosedEvent.
func (c *Client) Events() <-chan Event {
	return c.events
}

// Run reads frames until the connection ends. It emits exactly one
// ClosedEvent, then closes the event channel. Malformed frames are reported
// as DecodeFailedEvents and never stop the loop.
func (c *Client) Run() {
	defer close(c.events)
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				err = nil
			}
			if err != nil {
				c.log.Error().Err(err).Msg("feed connection lost")
			}
			c.events <- ClosedEvent{Err: err}
			return
		}
		ev := routeEnvelope(raw)
		if failed, ok := ev.(DecodeFailedEvent); ok {
			c.log.Error().Err(failed.Err).Msg("feed payload rejected")
		}
		c.events <- ev
	}
}

// Close tears down the connection; Run then winds down on its read error.
func (c *Client) Close() error {
	return c.conn.Close()
}

// routeEnvelope probes the frame for its feed name and hands the payload to
// that feed's decoder. Feeds are independent: a failure here only affects
// this one frame.
func routeEnvelope(raw []byte) Event {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return DecodeFailedEvent{Err: fmt.Errorf("bad feed envelope: %w", err)}
	}
	switch env.Feed {
	case board.FeedUsers:
		users, err := board.DecodeUsers(env.Data)
		if err != nil {
			return DecodeFailedEvent{Err: err}
		}
		return UsersEvent{Users: users}
	case board.FeedPosts:
		posts, err := board.DecodePosts(env.Data)
		if err != nil {
			return DecodeFailedEvent{Err: err}
		}
		return PostsEvent{Posts: posts}
	case board.FeedColumns:
		columns, err := board.DecodeColumns(env.Data)
		if err != nil {
			return DecodeFailedEvent{Err: err}
		}
		return ColumnsEvent{Columns: columns}
	default:
		return DecodeFailedEvent{Err: fmt.Errorf("unknown feed %q", env.Feed)}
	}
}
