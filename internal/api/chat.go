package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// Exchange is one historical chat turn: the user's message and the
// assistant's reply, in server (chronological) order.
type Exchange struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Reply   string `json:"reply"`
}

// SendChat posts a message and returns the assistant's reply text.
// A bearer token is attached when available; its absence is not an error.
func (c *Client) SendChat(ctx context.Context, message string) (string, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/chat/send", map[string]string{
		"message": message,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Reply string `json:"reply"`
		Error string `json:"error"`
	}
	if err := decode(raw, &out); err != nil {
		return "", err
	}
	if out.Reply == "" {
		if out.Error != "" {
			return "", errors.New(out.Error)
		}
		return "", errors.New("server did not include a reply")
	}
	return out.Reply, nil
}

// History fetches the stored conversation as ordered exchanges.
// Returns a *StatusError with code 401 when unauthenticated.
func (c *Client) History(ctx context.Context) ([]Exchange, error) {
	raw, err := c.doJSON(ctx, http.MethodGet, "/chat/history", nil)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ParseError{Snippet: Snippet(raw, 100), Err: err}
	}
	if err := historySchema().Validate(parsed); err != nil {
		return nil, &ParseError{Snippet: Snippet(raw, 100), Err: err}
	}

	var out []Exchange
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
