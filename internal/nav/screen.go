package nav

// Screen names a top-level view. Exactly one is active at a time.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenAuth
	ScreenParentDetails
	ScreenCheckin
	ScreenDashboard
	ScreenInsights
	ScreenSupport
	ScreenMeditation
	ScreenJournal
	ScreenAnalytics
	ScreenProfile
	ScreenZenTools
)

func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenAuth:
		return "auth"
	case ScreenParentDetails:
		return "parent-details"
	case ScreenCheckin:
		return "checkin"
	case ScreenDashboard:
		return "dashboard"
	case ScreenInsights:
		return "insights"
	case ScreenSupport:
		return "support"
	case ScreenMeditation:
		return "meditation"
	case ScreenJournal:
		return "journal"
	case ScreenAnalytics:
		return "analytics"
	case ScreenProfile:
		return "profile"
	case ScreenZenTools:
		return "zentools"
	default:
		return "unknown"
	}
}
