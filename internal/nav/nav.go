// Package nav is the top-level state machine: which screen is visible and
// who is signed in. Screens never change this state directly; they call the
// controller's transition operations.
package nav

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/zenspace/zenspace/internal/api"
	"github.com/zenspace/zenspace/internal/checkin"
	"github.com/zenspace/zenspace/internal/session"
	"github.com/zenspace/zenspace/internal/storage"
)

// Controller owns the current screen and session. All methods run on the
// event loop; none of them block on the network.
type Controller struct {
	store storage.Store
	log   *zap.Logger
	now   func() time.Time

	screen  Screen
	session *session.Session
}

// New creates a controller at the splash screen with no session. Call
// Initialize to restore state from durable storage.
func New(store storage.Store, log *zap.Logger) *Controller {
	return &Controller{
		store:  store,
		log:    log,
		now:    time.Now,
		screen: ScreenSplash,
	}
}

// Screen returns the active screen.
func (c *Controller) Screen() Screen { return c.screen }

// Session returns the signed-in user, or nil.
func (c *Controller) Session() *session.Session { return c.session }

// Initialize restores state at startup. A non-empty authPayload (the
// base64url blob from a federated-login redirect) takes priority: when it
// decodes cleanly the session and tokens it carries are persisted and the
// user lands on the dashboard. The payload is consumed here exactly once;
// it is never written back anywhere it could replay. Malformed payloads are
// logged and ignored. Otherwise the stored session decides: present means
// dashboard, absent or corrupt means splash.
func (c *Controller) Initialize(ctx context.Context, authPayload string) {
	if authPayload != "" {
		res, err := session.DecodeAuthPayload(authPayload)
		if err == nil {
			s := session.FromUser(res.User)
			c.persist(ctx, storage.KeyUser, s.Encode())
			c.persist(ctx, storage.KeyAccessToken, res.Tokens.AccessToken)
			c.persist(ctx, storage.KeyRefreshToken, res.Tokens.RefreshToken)
			c.session = &s
			c.screen = ScreenDashboard
			c.log.Info("session from auth payload", zap.String("email", s.Email))
			return
		}
		c.log.Warn("ignoring malformed auth payload", zap.Error(err))
	}

	raw, ok, err := c.store.Get(ctx, storage.KeyUser)
	if err != nil {
		c.log.Warn("session read failed", zap.Error(err))
	}
	if !ok || err != nil {
		c.screen = ScreenSplash
		return
	}

	s, err := session.Parse(raw)
	if err != nil {
		c.log.Warn("discarding corrupt stored session", zap.Error(err))
		c.screen = ScreenSplash
		return
	}
	c.session = &s
	c.screen = ScreenDashboard
}

// GetStarted moves from the splash screen to authentication.
func (c *Controller) GetStarted() {
	if c.screen == ScreenSplash {
		c.screen = ScreenAuth
	}
}

// Authenticated records a successful login or signup: the session, token
// pair, and language preference (when the form collected one) are persisted
// and the user proceeds to the parent-details step.
func (c *Controller) Authenticated(ctx context.Context, res *api.AuthResult, language string) {
	s := session.FromUser(res.User)
	c.persist(ctx, storage.KeyUser, s.Encode())
	c.persist(ctx, storage.KeyAccessToken, res.Tokens.AccessToken)
	c.persist(ctx, storage.KeyRefreshToken, res.Tokens.RefreshToken)
	if language != "" {
		c.persist(ctx, storage.KeyPreferredLanguage, language)
	}
	c.session = &s
	c.screen = ScreenParentDetails
}

// ParentDetailsCompleted persists the guardian contact, then routes to the
// daily check-in unless one was already recorded today.
func (c *Controller) ParentDetailsCompleted(ctx context.Context, raw string) {
	c.persist(ctx, storage.KeyParentDetails, raw)

	done, err := checkin.CompletedToday(ctx, c.store, c.now())
	if err != nil {
		c.log.Warn("check-in lookup failed", zap.Error(err))
	}
	if done {
		c.screen = ScreenDashboard
	} else {
		c.screen = ScreenCheckin
	}
}

// CheckinCompleted persists today's survey and lands on the dashboard.
func (c *Controller) CheckinCompleted(ctx context.Context, data checkin.Checkin) {
	if data.Date == "" {
		data.Date = checkin.DateKey(c.now())
	}
	if err := checkin.Save(ctx, c.store, data); err != nil {
		c.log.Warn("check-in write failed", zap.Error(err))
	}
	c.screen = ScreenDashboard
}

// Navigate maps a requested target name through a fixed whitelist to one of
// the bottom-navigation screens. Unrecognized targets land on the dashboard.
func (c *Controller) Navigate(target string) {
	switch target {
	case "dashboard":
		c.screen = ScreenDashboard
	case "zentools":
		c.screen = ScreenZenTools
	case "analytics":
		c.screen = ScreenAnalytics
	case "support":
		c.screen = ScreenSupport
	case "profile":
		c.screen = ScreenProfile
	case "insights":
		c.screen = ScreenInsights
	case "meditation", "journal":
		// Journaling lives inside the meditation screen.
		c.screen = ScreenMeditation
	default:
		c.screen = ScreenDashboard
	}
}

// Back applies the static predecessor table. There is no history stack; the
// mapping is a fixed rule per screen, and unmapped screens fall back to the
// dashboard.
func (c *Controller) Back() {
	switch c.screen {
	case ScreenDashboard, ScreenAuth:
		c.screen = ScreenSplash
	case ScreenParentDetails:
		c.screen = ScreenAuth
	case ScreenCheckin:
		c.screen = ScreenParentDetails
	case ScreenZenTools, ScreenInsights, ScreenSupport,
		ScreenMeditation, ScreenAnalytics, ScreenProfile:
		c.screen = ScreenDashboard
	default:
		c.screen = ScreenDashboard
	}
}

// Logout clears the session and every durable record, returning to splash.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Warn("storage clear failed", zap.Error(err))
	}
	c.session = nil
	c.screen = ScreenSplash
}

// ActiveTab returns the bottom-navigation tab to highlight for the current
// screen. Screens that share a tab map onto it.
func (c *Controller) ActiveTab() Screen {
	switch c.screen {
	case ScreenDashboard, ScreenZenTools, ScreenAnalytics,
		ScreenSupport, ScreenProfile:
		return c.screen
	case ScreenInsights:
		return ScreenAnalytics
	case ScreenMeditation:
		return ScreenSupport
	default:
		return ScreenDashboard
	}
}

// ShowTabBar reports whether the persistent bottom navigation is visible:
// only once signed in and past onboarding.
func (c *Controller) ShowTabBar() bool {
	if c.session == nil {
		return false
	}
	switch c.screen {
	case ScreenSplash, ScreenAuth, ScreenParentDetails, ScreenCheckin:
		return false
	}
	return true
}

// persist is a fire-and-forget storage write. Failures are logged; the
// state machine never blocks on or surfaces them.
func (c *Controller) persist(ctx context.Context, key, value string) {
	if err := c.store.Set(ctx, key, value); err != nil {
		c.log.Warn("storage write failed", zap.String("key", key), zap.Error(err))
	}
}
