package chat

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/zenspace/zenspace/internal/api"
)

type stubService struct {
	reply   string
	sendErr error
	history []api.Exchange
	histErr error
}

func (s *stubService) SendChat(ctx context.Context, message string) (string, error) {
	if s.sendErr != nil {
		return "", s.sendErr
	}
	return s.reply, nil
}

func (s *stubService) History(ctx context.Context) ([]api.Exchange, error) {
	return s.history, s.histErr
}

func newReady(t *testing.T, svc Service) *Controller {
	t.Helper()
	c := New(svc, zaptest.NewLogger(t))
	c.BeginHydrate()
	exchanges, err := svc.History(context.Background())
	c.ApplyHistory(exchanges, err)
	require.Equal(t, StateReady, c.State())
	return c
}

func TestHydrateNonEmptyHistory(t *testing.T) {
	c := newReady(t, &stubService{history: []api.Exchange{
		{ID: "1", Message: "hi", Reply: "hello"},
	}})

	msgs := c.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, "hi", msgs[0].Text)
	assert.Equal(t, RoleAssistant, msgs[1].Role)
	assert.Equal(t, "hello", msgs[1].Text)
}

func TestHydrateEmptyHistorySeedsGreeting(t *testing.T) {
	c := newReady(t, &stubService{})

	msgs := c.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleAssistant, msgs[0].Role)
	assert.Equal(t, Greeting, msgs[0].Text)
}

func TestHydrateUnauthorizedSeedsGreeting(t *testing.T) {
	c := newReady(t, &stubService{
		histErr: &api.StatusError{Code: http.StatusUnauthorized, Message: "Not authenticated"},
	})

	msgs := c.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, Greeting, msgs[0].Text)
	assert.Empty(t, c.Err(), "history failures are not surfaced")
}

func TestHydrateOtherFailureSeedsGreeting(t *testing.T) {
	c := newReady(t, &stubService{histErr: &api.UnreachableError{Err: errors.New("refused")}})
	require.Len(t, c.Messages(), 1)
	assert.Equal(t, Greeting, c.Messages()[0].Text)
}

func TestSendAppendsUserThenReply(t *testing.T) {
	c := newReady(t, &stubService{reply: "take a breath"})

	ctx, gen, ok := c.BeginSend("I feel anxious")
	require.True(t, ok)
	require.NotNil(t, ctx)
	assert.Equal(t, StateSending, c.State())

	// User message is visible immediately, before settlement.
	msgs := c.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleUser, msgs[1].Role)

	reply, err := c.Send(ctx, "I feel anxious")
	c.FinishSend(gen, reply, err)

	msgs = c.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "take a breath", msgs[2].Text)
	assert.Equal(t, StateReady, c.State())

	online, known := c.Online()
	assert.True(t, known)
	assert.True(t, online)
}

func TestSendRejectsEmptyText(t *testing.T) {
	c := newReady(t, &stubService{})
	_, _, ok := c.BeginSend("")
	assert.False(t, ok)
}

func TestSupersededSendAppendsNothing(t *testing.T) {
	c := newReady(t, &stubService{reply: "second reply"})
	before := len(c.Messages())

	ctx1, gen1, ok := c.BeginSend("first")
	require.True(t, ok)
	_, gen2, ok := c.BeginSend("second")
	require.True(t, ok)

	// Reissue cancels the old context before the new request starts.
	assert.ErrorIs(t, ctx1.Err(), context.Canceled)

	// The first request settles late, however it settles; it must not
	// touch the conversation.
	c.FinishSend(gen1, "stale reply", nil)
	assert.Len(t, c.Messages(), before+2, "two user messages, no assistant yet")

	c.FinishSend(gen1, "", context.Canceled)
	assert.Len(t, c.Messages(), before+2)

	c.FinishSend(gen2, "second reply", nil)
	msgs := c.Messages()
	require.Len(t, msgs, before+3)
	assert.Equal(t, "second reply", msgs[len(msgs)-1].Text)
}

func TestSendUnreachableAppendsFallback(t *testing.T) {
	c := newReady(t, &stubService{sendErr: &api.UnreachableError{Err: errors.New("connection refused")}})

	ctx, gen, ok := c.BeginSend("hello?")
	require.True(t, ok)
	reply, err := c.Send(ctx, "hello?")
	c.FinishSend(gen, reply, err)

	msgs := c.Messages()
	last := msgs[len(msgs)-1]
	assert.Equal(t, RoleAssistant, last.Role)
	assert.Equal(t, Fallback, last.Text)
	assert.NotEmpty(t, c.Err())

	online, known := c.Online()
	assert.True(t, known)
	assert.False(t, online)
}

func TestSendMalformedBodySurfacesSnippet(t *testing.T) {
	c := newReady(t, &stubService{sendErr: &api.ParseError{
		Snippet: "<html>Bad Gateway</html>",
		Err:     errors.New("invalid character '<'"),
	}})

	ctx, gen, ok := c.BeginSend("hello?")
	require.True(t, ok)
	reply, err := c.Send(ctx, "hello?")
	c.FinishSend(gen, reply, err)

	last := c.Messages()[len(c.Messages())-1]
	assert.Equal(t, Fallback, last.Text)
	assert.Contains(t, c.Err(), "<html>Bad Gateway")
}

func TestSendServerErrorAppendsFallback(t *testing.T) {
	c := newReady(t, &stubService{sendErr: &api.StatusError{Code: 502, Message: "AI backend overloaded"}})

	ctx, gen, ok := c.BeginSend("hello?")
	require.True(t, ok)
	reply, err := c.Send(ctx, "hello?")
	c.FinishSend(gen, reply, err)

	last := c.Messages()[len(c.Messages())-1]
	assert.Equal(t, Fallback, last.Text)
	assert.Contains(t, c.Err(), "AI backend overloaded")

	// A non-2xx response is the server answering; connectivity is unchanged.
	_, known := c.Online()
	assert.False(t, known)
}

func TestQuickRepliesOnlyBeforeEngagement(t *testing.T) {
	c := newReady(t, &stubService{reply: "ok"})
	assert.True(t, c.QuickRepliesAvailable(), "greeting only")

	ctx, gen, ok := c.BeginSend("hi")
	require.True(t, ok)
	assert.False(t, c.QuickRepliesAvailable(), "disabled while sending")

	reply, err := c.Send(ctx, "hi")
	c.FinishSend(gen, reply, err)
	assert.False(t, c.QuickRepliesAvailable(), "conversation has grown past the opener")
}

func TestCloseFreezesConversation(t *testing.T) {
	c := newReady(t, &stubService{reply: "late"})

	ctx, gen, ok := c.BeginSend("hi")
	require.True(t, ok)
	c.Close()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	before := len(c.Messages())
	c.FinishSend(gen, "late", nil)
	assert.Len(t, c.Messages(), before)

	_, _, ok = c.BeginSend("again")
	assert.False(t, ok)
}
