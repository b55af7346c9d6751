package zentools

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/api"
	"github.com/zenspace/zenspace/internal/chat"
	"github.com/zenspace/zenspace/internal/ui/components"
	"github.com/zenspace/zenspace/internal/ui/theme"
	"go.uber.org/zap"
)

type historyMsg struct {
	Exchanges []api.Exchange
	Err       error
}

type sendResultMsg struct {
	Gen   uint64
	Reply string
	Err   error
}

// chatView renders one conversation with ZenBot. The lifecycle lives in
// chat.Controller; this type only translates between tea messages and
// controller calls.
type chatView struct {
	ctl   *chat.Controller
	input components.TextInput
}

func newChatView(svc chat.Service, log *zap.Logger) *chatView {
	v := &chatView{
		ctl:   chat.New(svc, log),
		input: components.NewTextInput("", "Share what's on your mind...", 500),
	}
	return v
}

func (v *chatView) init() tea.Cmd {
	v.ctl.BeginHydrate()
	ctl := v.ctl
	return tea.Batch(
		v.input.Focus(),
		func() tea.Msg {
			exchanges, err := ctl.FetchHistory(context.Background())
			return historyMsg{Exchanges: exchanges, Err: err}
		},
	)
}

func (v *chatView) close() {
	v.ctl.Close()
}

func (v *chatView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case historyMsg:
		v.ctl.ApplyHistory(msg.Exchanges, msg.Err)
		return nil

	case sendResultMsg:
		v.ctl.FinishSend(msg.Gen, msg.Reply, msg.Err)
		return nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "enter" {
			return v.send(strings.TrimSpace(v.input.Value()))
		}
		if v.ctl.QuickRepliesAvailable() && len(key) == 1 && key[0] >= '1' && key[0] <= '6' {
			idx := int(key[0] - '1')
			if idx < len(chat.QuickReplies) {
				return v.send(chat.QuickReplies[idx])
			}
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *chatView) send(text string) tea.Cmd {
	ctx, gen, ok := v.ctl.BeginSend(text)
	if !ok {
		return nil
	}
	v.input.Reset()
	ctl := v.ctl
	return func() tea.Msg {
		reply, err := ctl.Send(ctx, text)
		return sendResultMsg{Gen: gen, Reply: reply, Err: err}
	}
}

func (v *chatView) view(width, height int) string {
	var b strings.Builder

	bubbleWidth := min(width-12, 64)

	switch v.ctl.State() {
	case chat.StateAwaitingHistory:
		b.WriteString(theme.Hint.Render("Loading your conversation..."))
		b.WriteString("\n")
	default:
		for _, m := range v.ctl.Messages() {
			if m.Role == chat.RoleUser {
				bubble := theme.UserBubble.Width(bubbleWidth).Render(m.Text)
				b.WriteString(lipgloss.NewStyle().Width(width - 4).
					Align(lipgloss.Right).Render(bubble))
			} else {
				b.WriteString(theme.BotBubble.Width(bubbleWidth).Render(m.Text))
			}
			b.WriteString("\n")
		}
	}

	if v.ctl.State() == chat.StateSending {
		b.WriteString(theme.Hint.Render("ZenBot is typing..."))
		b.WriteString("\n")
	}

	if errText := v.ctl.Err(); errText != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(errText))
		b.WriteString("\n")
	}

	if v.ctl.QuickRepliesAvailable() {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Quick responses:"))
		b.WriteString("\n")
		for i, qr := range chat.QuickReplies {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).
				Render(fmt.Sprintf("  %d. %s", i+1, qr)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.input.View())

	// Keep the latest lines visible when the conversation outgrows the
	// viewport.
	lines := strings.Split(b.String(), "\n")
	avail := height - 2
	if avail > 0 && len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}
