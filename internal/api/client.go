// Package api talks to the board backend: post submission plus the legacy
// column form endpoint.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client issues submissions against the backend. Responses are drained and
// discarded; the model never consumes them.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

func New(base string, log zerolog.Logger) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{},
		log:  log,
	}
}

type postBody struct {
	Content string `json:"content"`
}

// SubmitPost sends the draft to POST /posts/. It returns the submission id
// either way so the outcome can be correlated in the log; the UI shows
// nothing on failure and there is no retry.
func (c *Client) SubmitPost(ctx context.Context, content string) (string, error) {
	id := uuid.NewString()
	body, err := json.Marshal(postBody{Content: content})
	if err != nil {
		return id, fmt.Errorf("encode post body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/posts/", bytes.NewReader(body))
	if err != nil {
		return id, fmt.Errorf("build post request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Str("submission", id).Err(err).Msg("post submission failed")
		return id, fmt.Errorf("submit post: %w", err)
	}
	drain(resp)
	c.log.Info().Str("submission", id).Int("status", resp.StatusCode).Msg("post submitted")
	return id, nil
}

// AddColumn posts the legacy column-creation form. It is fire-and-forget and
// deliberately outside the typed event flow.
func (c *Client) AddColumn(ctx context.Context, name string) error {
	form := url.Values{"columnName": {name}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/add-column", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build column request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Str("column", name).Err(err).Msg("column submission failed")
		return fmt.Errorf("add column: %w", err)
	}
	drain(resp)
	c.log.Info().Str("column", name).Int("status", resp.StatusCode).Msg("column submitted")
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
