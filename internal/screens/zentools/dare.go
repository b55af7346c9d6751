package zentools

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zenspace/zenspace/internal/ui/theme"
)

type dare struct {
	Title     string
	Challenge string
	Category  string
	Points    int
}

var wellnessDares = []dare{
	{"Gratitude Boost", "Write down 3 things you're grateful for right now", "mindfulness", 10},
	{"Breathing Break", "Take 5 deep breaths and count to 10 on each exhale", "relaxation", 15},
	{"Kindness Ripple", "Send a kind message to someone you care about", "connection", 20},
	{"Movement Moment", "Do 20 jumping jacks or stretch for 2 minutes", "physical", 15},
	{"Digital Detox", "Put your phone away for the next 30 minutes", "mindfulness", 25},
	{"Smile Challenge", "Look in a mirror and give yourself a genuine compliment", "self-love", 20},
	{"Nature Connection", "Step outside and notice 5 things in nature around you", "mindfulness", 15},
	{"Hydration Station", "Drink a full glass of water mindfully and slowly", "physical", 10},
	{"Creative Expression", "Draw, doodle, or write something creative for 5 minutes", "creativity", 20},
	{"Mindful Moment", "Sit quietly and focus on one sound around you for 2 minutes", "mindfulness", 15},
	{"Organization Zen", "Tidy up your immediate space for 5 minutes", "environment", 15},
	{"Future Self", "Write a short encouraging note to your future self", "self-love", 25},
}

// dareView draws a random wellness challenge and tallies points for
// completed ones. Points reset with the screen; they are encouragement,
// not a scoreboard.
type dareView struct {
	current   *dare
	completed int
	points    int
	done      bool
}

func newDareView() *dareView {
	return &dareView{}
}

func (v *dareView) update(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch kmsg.String() {
	case " ", "space", "s":
		d := wellnessDares[rand.Intn(len(wellnessDares))]
		v.current = &d
		v.done = false
	case "enter":
		if v.current != nil && !v.done {
			v.points += v.current.Points
			v.completed++
			v.done = true
		}
	}
	return nil
}

func (v *dareView) view(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Random Dare"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Tiny challenges, real mood shifts"))
	b.WriteString("\n\n")

	if v.current == nil {
		b.WriteString(theme.Body.Render("Press space to spin for a wellness dare."))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(v.current.Title))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(v.current.Challenge))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%s · %d pts", v.current.Category, v.current.Points)))
		b.WriteString("\n\n")
		if v.done {
			b.WriteString(theme.Positive.Render("Nice! Dare completed ✓"))
		} else {
			b.WriteString(theme.Body.Render("Press enter when you've done it."))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
		Render(fmt.Sprintf("★ %d points · %d completed", v.points, v.completed)))

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
