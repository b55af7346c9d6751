// Package chat manages one conversation with ZenBot: the append-only
// message list, the single outstanding send request, and the connectivity
// signal. All methods run on the event loop; network calls happen elsewhere
// and report back through ApplyHistory and FinishSend.
package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zenspace/zenspace/internal/api"
)

// Greeting seeds an empty or unavailable conversation.
const Greeting = "Hello! I'm ZenBot, your AI wellness companion. I'm here to listen and support you. How are you feeling today?"

// Fallback is appended in place of a reply when a send fails.
const Fallback = "I'm having trouble connecting to my AI brain right now. Please double-check that the Zen Space backend is running and try again."

// QuickReplies are the canned openers offered before the user has
// substantively engaged.
var QuickReplies = []string{
	"I'm feeling anxious",
	"Help me relax",
	"I need motivation",
	"How to sleep better?",
	"Dealing with stress",
	"I feel overwhelmed",
}

// Role tags a message's sender.
type Role int

const (
	RoleUser Role = iota
	RoleAssistant
)

// Message is one conversation entry. Messages are never edited or removed
// once appended.
type Message struct {
	ID   string
	Role Role
	Text string
	Time time.Time
}

// State is the controller's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateAwaitingHistory
	StateReady
	StateSending
)

// Service is the slice of the backend client the controller needs.
type Service interface {
	SendChat(ctx context.Context, message string) (string, error)
	History(ctx context.Context) ([]api.Exchange, error)
}

// Controller is one conversation instance. Create a fresh one each time the
// chat view mounts; Close it on unmount so a late reply cannot mutate a
// dead conversation.
type Controller struct {
	svc Service
	log *zap.Logger
	now func() time.Time

	state    State
	messages []Message
	errText  string

	// online is a tri-state connectivity signal: nil until the first send
	// settles, then the outcome of the most recent one.
	online *bool

	// gen identifies the current send. A settling request whose generation
	// no longer matches was superseded and must not touch the conversation.
	gen    uint64
	cancel context.CancelFunc
	closed bool
}

// New creates an idle controller.
func New(svc Service, log *zap.Logger) *Controller {
	return &Controller{svc: svc, log: log, now: time.Now, state: StateIdle}
}

// State returns the lifecycle phase.
func (c *Controller) State() State { return c.state }

// Messages returns the conversation in insertion order. The slice is shared;
// callers must not mutate it.
func (c *Controller) Messages() []Message { return c.messages }

// Err returns the transient error banner text, or "".
func (c *Controller) Err() string { return c.errText }

// ClearErr dismisses the error banner.
func (c *Controller) ClearErr() { c.errText = "" }

// Online reports the connectivity signal: unknown before any send settles.
func (c *Controller) Online() (online, known bool) {
	if c.online == nil {
		return false, false
	}
	return *c.online, true
}

// BeginHydrate marks the history fetch as outstanding. The caller performs
// the fetch and reports through ApplyHistory.
func (c *Controller) BeginHydrate() {
	if c.state == StateIdle {
		c.state = StateAwaitingHistory
	}
}

// ApplyHistory settles the mount-time history fetch. Non-empty history
// hydrates the conversation as user/assistant pairs in server order. An
// empty history, a 401, or any other failure seeds the greeting instead;
// history problems are never surfaced as blocking errors.
func (c *Controller) ApplyHistory(exchanges []api.Exchange, err error) {
	if c.closed {
		return
	}
	c.state = StateReady

	if err != nil {
		if !api.IsUnauthorized(err) {
			c.log.Warn("chat history fetch failed", zap.Error(err))
		}
		c.seedGreeting()
		return
	}
	if len(exchanges) == 0 {
		c.seedGreeting()
		return
	}

	now := c.now()
	for _, ex := range exchanges {
		c.messages = append(c.messages,
			Message{ID: ex.ID + "-user", Role: RoleUser, Text: ex.Message, Time: now},
			Message{ID: ex.ID + "-ai", Role: RoleAssistant, Text: ex.Reply, Time: now},
		)
	}
}

// BeginSend starts a send: the user message is appended immediately so it
// stays visible even if the call fails, any previous in-flight request is
// cancelled first, and the returned context and generation accompany the
// network call. Empty text and sends before hydration are rejected.
func (c *Controller) BeginSend(text string) (context.Context, uint64, bool) {
	if c.closed || text == "" || (c.state != StateReady && c.state != StateSending) {
		return nil, 0, false
	}

	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.errText = ""
	c.messages = append(c.messages, Message{
		ID:   uuid.NewString(),
		Role: RoleUser,
		Text: text,
		Time: c.now(),
	})
	c.state = StateSending
	return ctx, c.gen, true
}

// FinishSend settles the send identified by gen. Superseded and cancelled
// requests are discarded without touching the conversation; the live
// request appends exactly one assistant message, real reply or fallback.
func (c *Controller) FinishSend(gen uint64, reply string, err error) {
	if c.closed || gen != c.gen {
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}

	c.state = StateReady
	c.cancel = nil

	if err == nil {
		c.setOnline(true)
		c.append(RoleAssistant, reply)
		return
	}

	if api.IsUnreachable(err) {
		c.setOnline(false)
	}
	c.log.Warn("chat send failed", zap.Error(err))
	c.append(RoleAssistant, Fallback)
	c.errText = fmt.Sprintf("Unable to reach ZenBot: %v. Please try again.", err)
}

// Send performs the network call for a send begun with BeginSend. It only
// reads the service reference, so it is safe to call off the event loop.
func (c *Controller) Send(ctx context.Context, text string) (string, error) {
	return c.svc.SendChat(ctx, text)
}

// FetchHistory performs the mount-time history call. Safe to call off the
// event loop.
func (c *Controller) FetchHistory(ctx context.Context) ([]api.Exchange, error) {
	return c.svc.History(ctx)
}

// QuickRepliesAvailable reports whether the canned openers should be
// offered: only before the user has substantively engaged, and never while
// a send is outstanding.
func (c *Controller) QuickRepliesAvailable() bool {
	return c.state == StateReady && len(c.messages) <= 2
}

// Close cancels any outstanding request and freezes the conversation. All
// subsequent settlement callbacks are ignored.
func (c *Controller) Close() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.closed = true
}

func (c *Controller) seedGreeting() {
	c.messages = append(c.messages, Message{
		ID:   "welcome",
		Role: RoleAssistant,
		Text: Greeting,
		Time: c.now(),
	})
}

func (c *Controller) append(role Role, text string) {
	c.messages = append(c.messages, Message{
		ID:   uuid.NewString(),
		Role: role,
		Text: text,
		Time: c.now(),
	})
}

func (c *Controller) setOnline(v bool) {
	c.online = &v
}
