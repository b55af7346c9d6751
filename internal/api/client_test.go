package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", 5*time.Second, func() string { return "tok-123" })
}

func TestLoginDecodesUserAndTokens(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Write([]byte(`{
			"user": {"_id":"u1","name":"Ada Lovelace","email":"ada@uni.edu"},
			"tokens": {"access_token":"a","refresh_token":"r"}
		}`))
	})

	res, err := c.Login(context.Background(), "ada@uni.edu", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", res.User.ID)
	assert.Equal(t, "Ada Lovelace", res.User.Name)
	assert.Equal(t, "a", res.Tokens.AccessToken)
	assert.Equal(t, "r", res.Tokens.RefreshToken)
}

func TestLoginSurfacesServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	})

	_, err := c.Login(context.Background(), "ada@uni.edu", "wrong")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestSendChatAttachesBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"reply":"Take a slow breath."}`))
	})

	reply, err := c.SendChat(context.Background(), "I feel anxious")
	require.NoError(t, err)
	assert.Equal(t, "Take a slow breath.", reply)
}

func TestSendChatOmitsBearerWhenNoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"reply":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", 5*time.Second, func() string { return "" })
	_, err := c.SendChat(context.Background(), "hi")
	require.NoError(t, err)
}

func TestSendChatMalformedBodyCarriesSnippet(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>Bad Gateway</html>`))
	})

	_, err := c.SendChat(context.Background(), "hi")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Snippet, "<html>Bad Gateway")
	assert.Contains(t, err.Error(), "<html>")
}

func TestSendChatUnreachable(t *testing.T) {
	// Point at a closed port.
	c := New("http://127.0.0.1:1/api", 2*time.Second, nil)
	_, err := c.SendChat(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, IsUnreachable(err))
	assert.False(t, IsUnauthorized(err))
}

func TestSendChatCancelledPropagatesCancellation(t *testing.T) {
	started := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := c.SendChat(ctx, "hi")
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsUnreachable(err))
}

func TestHistoryValidShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat/history", r.URL.Path)
		w.Write([]byte(`[{"id":"1","message":"hi","reply":"hello"}]`))
	})

	hist, err := c.History(context.Background())
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, "hi", hist[0].Message)
	assert.Equal(t, "hello", hist[0].Reply)
}

func TestHistoryRejectsWrongShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"message":"hi"}]`))
	})

	_, err := c.History(context.Background())
	require.Error(t, err)
	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestHistoryUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Not authenticated"}`))
	})

	_, err := c.History(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
}

func TestUpdateParent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/users/me/parent", r.URL.Path)
		w.Write([]byte(`{"_id":"u1","name":"Ada Lovelace","email":"ada@uni.edu"}`))
	})

	u, err := c.UpdateParent(context.Background(), ParentInput{
		Name: "Grace", Email: "grace@example.com", Phone: "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}

func TestGoogleStartURL(t *testing.T) {
	c := New("http://localhost:5000/api/", time.Second, nil)
	assert.Equal(t, "http://localhost:5000/api/auth/google/start", c.GoogleStartURL())
}
