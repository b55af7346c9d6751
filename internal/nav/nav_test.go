package nav

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/zenspace/zenspace/internal/api"
	"github.com/zenspace/zenspace/internal/checkin"
	"github.com/zenspace/zenspace/internal/session"
	"github.com/zenspace/zenspace/internal/storage"
)

func newTestController(t *testing.T) (*Controller, *storage.Memory) {
	t.Helper()
	store := storage.NewMemory()
	c := New(store, zaptest.NewLogger(t))
	return c, store
}

func TestInitializeNoSessionLandsOnSplash(t *testing.T) {
	c, _ := newTestController(t)
	c.Initialize(context.Background(), "")
	assert.Equal(t, ScreenSplash, c.Screen())
	assert.Nil(t, c.Session())
}

func TestInitializeRestoreIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c, store := newTestController(t)

	stored := session.Session{UserID: "u1", Name: "Ada Lovelace", Email: "ada@uni.edu", FirstName: "Ada"}
	require.NoError(t, store.Set(ctx, storage.KeyUser, stored.Encode()))

	c.Initialize(ctx, "")
	require.Equal(t, ScreenDashboard, c.Screen())
	first := *c.Session()

	c.Initialize(ctx, "")
	assert.Equal(t, ScreenDashboard, c.Screen())
	assert.Equal(t, first, *c.Session())
}

func TestInitializeCorruptSessionTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	c, store := newTestController(t)
	require.NoError(t, store.Set(ctx, storage.KeyUser, "{not json"))

	c.Initialize(ctx, "")
	assert.Equal(t, ScreenSplash, c.Screen())
	assert.Nil(t, c.Session())
}

func TestInitializeConsumesAuthPayload(t *testing.T) {
	ctx := context.Background()
	c, store := newTestController(t)

	payload := base64.RawURLEncoding.EncodeToString([]byte(
		`{"user":{"_id":"u1","name":"Ada Lovelace","email":"ada@uni.edu"},` +
			`"tokens":{"access_token":"at","refresh_token":"rt"}}`))
	c.Initialize(ctx, payload)

	assert.Equal(t, ScreenDashboard, c.Screen())
	require.NotNil(t, c.Session())
	assert.Equal(t, "Ada", c.Session().FirstName)

	at, ok, err := store.Get(ctx, storage.KeyAccessToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "at", at)
}

func TestInitializeMalformedPayloadIgnored(t *testing.T) {
	c, _ := newTestController(t)
	c.Initialize(context.Background(), "!!!garbage!!!")
	assert.Equal(t, ScreenSplash, c.Screen())
	assert.Nil(t, c.Session())
}

func TestOnboardingFlow(t *testing.T) {
	ctx := context.Background()
	c, store := newTestController(t)
	c.Initialize(ctx, "")

	c.GetStarted()
	assert.Equal(t, ScreenAuth, c.Screen())

	c.Authenticated(ctx, &api.AuthResult{
		User:   api.User{ID: "u1", Name: "Ada Lovelace", Email: "ada@uni.edu"},
		Tokens: api.Tokens{AccessToken: "at", RefreshToken: "rt"},
	}, "en")
	assert.Equal(t, ScreenParentDetails, c.Screen())
	require.NotNil(t, c.Session())

	c.ParentDetailsCompleted(ctx, `{"name":"Grace","email":"g@x.y","phone":"555"}`)
	assert.Equal(t, ScreenCheckin, c.Screen())

	pd, ok, err := store.Get(ctx, storage.KeyParentDetails)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, pd, "Grace")

	c.CheckinCompleted(ctx, checkin.Checkin{Mood: checkin.MoodCalm})
	assert.Equal(t, ScreenDashboard, c.Screen())
}

func TestSignupLanguagePersistedAcrossOnboarding(t *testing.T) {
	ctx := context.Background()
	c, store := newTestController(t)
	c.Initialize(ctx, "")
	c.GetStarted()

	c.Authenticated(ctx, &api.AuthResult{
		User:   api.User{ID: "u1", Name: "Ada Lovelace", Email: "ada@uni.edu"},
		Tokens: api.Tokens{AccessToken: "at", RefreshToken: "rt"},
	}, "hi")
	c.ParentDetailsCompleted(ctx, "{}")
	c.CheckinCompleted(ctx, checkin.Checkin{Mood: checkin.MoodCalm})
	require.Equal(t, ScreenDashboard, c.Screen())

	lang, ok, err := store.Get(ctx, storage.KeyPreferredLanguage)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hi", lang)
}

func TestLoginWithoutLanguageKeepsStoredPreference(t *testing.T) {
	ctx := context.Background()
	c, store := newTestController(t)
	require.NoError(t, store.Set(ctx, storage.KeyPreferredLanguage, "hi"))

	c.Authenticated(ctx, &api.AuthResult{User: api.User{Name: "A B", Email: "a@b.c"}}, "")

	lang, ok, err := store.Get(ctx, storage.KeyPreferredLanguage)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hi", lang)
}

func TestParentDetailsSkipsCheckinWhenDoneToday(t *testing.T) {
	ctx := context.Background()
	c, store := newTestController(t)
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	// A stale date must not satisfy the gate.
	require.NoError(t, store.Set(ctx, storage.KeyLastCheckin, "2024-01-01"))
	c.ParentDetailsCompleted(ctx, "{}")
	assert.Equal(t, ScreenCheckin, c.Screen())

	require.NoError(t, store.Set(ctx, storage.KeyLastCheckin, "2024-01-02"))
	c.ParentDetailsCompleted(ctx, "{}")
	assert.Equal(t, ScreenDashboard, c.Screen())
}

func TestNavigateWhitelist(t *testing.T) {
	c, _ := newTestController(t)

	cases := map[string]Screen{
		"dashboard":  ScreenDashboard,
		"zentools":   ScreenZenTools,
		"analytics":  ScreenAnalytics,
		"support":    ScreenSupport,
		"profile":    ScreenProfile,
		"insights":   ScreenInsights,
		"meditation": ScreenMeditation,
		"journal":    ScreenMeditation,
		"nonsense":   ScreenDashboard,
		"":           ScreenDashboard,
	}
	for target, want := range cases {
		c.Navigate(target)
		assert.Equal(t, want, c.Screen(), "target=%q", target)
	}
}

func TestBackNavigationTerminates(t *testing.T) {
	c, _ := newTestController(t)

	reachable := []string{
		"dashboard", "zentools", "analytics", "support",
		"profile", "insights", "meditation", "journal",
	}
	for _, target := range reachable {
		c.Navigate(target)
		// Back must reach splash or dashboard within a bounded number of
		// steps; the table has no cycles.
		steps := 0
		for c.Screen() != ScreenSplash {
			c.Back()
			steps++
			require.LessOrEqual(t, steps, 4, "target=%q stuck at %v", target, c.Screen())
		}
	}
}

func TestBackFromOnboardingScreens(t *testing.T) {
	c, _ := newTestController(t)

	c.GetStarted()
	c.Back()
	assert.Equal(t, ScreenSplash, c.Screen())

	ctx := context.Background()
	c.Authenticated(ctx, &api.AuthResult{User: api.User{Name: "A B", Email: "a@b.c"}}, "")
	c.Back()
	assert.Equal(t, ScreenAuth, c.Screen())
}

func TestLogoutPurgesEverything(t *testing.T) {
	ctx := context.Background()
	c, store := newTestController(t)

	c.Authenticated(ctx, &api.AuthResult{
		User:   api.User{ID: "u1", Name: "Ada Lovelace", Email: "ada@uni.edu"},
		Tokens: api.Tokens{AccessToken: "at", RefreshToken: "rt"},
	}, "en")
	c.CheckinCompleted(ctx, checkin.Checkin{Mood: checkin.MoodHappy})
	require.NoError(t, store.Set(ctx, storage.KeyDarkMode, "true"))

	c.Logout(ctx)

	assert.Equal(t, ScreenSplash, c.Screen())
	assert.Nil(t, c.Session())
	assert.Zero(t, store.Len())
}

func TestActiveTabMapping(t *testing.T) {
	c, _ := newTestController(t)

	c.Navigate("insights")
	assert.Equal(t, ScreenAnalytics, c.ActiveTab())

	c.Navigate("meditation")
	assert.Equal(t, ScreenSupport, c.ActiveTab())

	c.Navigate("zentools")
	assert.Equal(t, ScreenZenTools, c.ActiveTab())
}

func TestTabBarHiddenDuringOnboarding(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestController(t)

	assert.False(t, c.ShowTabBar())

	c.Authenticated(ctx, &api.AuthResult{User: api.User{Name: "A B", Email: "a@b.c"}}, "")
	assert.False(t, c.ShowTabBar(), "parent details is still onboarding")

	c.CheckinCompleted(ctx, checkin.Checkin{})
	assert.True(t, c.ShowTabBar())
}
