package navigation

import "github.com/Domenick1991/tripverse/internal/domain"

type NavigationUseCase interface {
	Screens() []domain.Screen
	Resolve(id string) domain.Screen
	Start() domain.Screen
	CompleteSplash() domain.Screen
	Menu() []domain.MenuItem
}

var screens = []domain.Screen{
	{ID: domain.ScreenSplash, Title: "Trip Verse", Available: true},
	{ID: domain.ScreenHome, Title: "Home", Available: true},
	{ID: domain.ScreenExplore, Title: "Explore", Available: true},
	{ID: domain.ScreenTripPlanner, Title: "Plan My Trip", Available: true},
	{ID: domain.ScreenProfile, Title: "Profile", Available: true},
	{ID: domain.ScreenQRDownload, Title: "Download App", Available: true},
	{ID: domain.ScreenJournal, Title: "My Journal", Available: true},
	{ID: domain.ScreenMap, Title: "Map", Available: true},
	{ID: domain.ScreenBookTickets, Title: "Book My Tickets", Available: true},
	{ID: domain.ScreenNearbyServices, Title: "Nearby Services", Available: true, Renders: domain.ScreenMap},
	{ID: domain.ScreenMyDocuments, Title: "My Documents"},
	{ID: domain.ScreenInsurance, Title: "Travel Insurance"},
	{ID: domain.ScreenHelp, Title: "Help"},
	{ID: domain.ScreenEmergency, Title: "Emergency"},
	{ID: domain.ScreenAdvisory, Title: "Travel Advisory"},
	{ID: domain.ScreenReportIssue, Title: "Report an Issue"},
	{ID: domain.ScreenLogin, Title: "Sign In"},
}

var menu = []domain.MenuItem{
	{ID: domain.ScreenHome, Title: "Home", Group: domain.MenuGroupMain},
	{ID: domain.ScreenTripPlanner, Title: "Plan My Trip", Group: domain.MenuGroupMain},
	{ID: domain.ScreenBookTickets, Title: "Book My Tickets", Group: domain.MenuGroupMain},
	{ID: domain.ScreenNearbyServices, Title: "Nearby Services", Group: domain.MenuGroupMain},
	{ID: domain.ScreenJournal, Title: "My Journal", Group: domain.MenuGroupMain},
	{ID: domain.ScreenMyDocuments, Title: "My Documents", Group: domain.MenuGroupTools},
	{ID: domain.ScreenInsurance, Title: "Travel Insurance", Group: domain.MenuGroupTools},
	{ID: domain.ScreenHelp, Title: "Help", Group: domain.MenuGroupSupport},
	{ID: domain.ScreenEmergency, Title: "Emergency", Group: domain.MenuGroupSupport},
	{ID: domain.ScreenAdvisory, Title: "Travel Advisory", Group: domain.MenuGroupSupport},
	{ID: domain.ScreenReportIssue, Title: "Report an Issue", Group: domain.MenuGroupSupport},
}

type NavigationService struct {
	byID map[domain.ScreenID]domain.Screen
}

func NewNavigationService() *NavigationService {
	byID := make(map[domain.ScreenID]domain.Screen, len(screens))
	for _, s := range screens {
		byID[s.ID] = s
	}
	return &NavigationService{byID: byID}
}

func (s *NavigationService) Screens() []domain.Screen {
	return screens
}

// Resolve maps a requested screen to what gets shown. Unknown names fall back
// to home. The splash is only shown through Start, so asking for it by name
// lands on home too.
func (s *NavigationService) Resolve(id string) domain.Screen {
	if screen, ok := s.byID[domain.ScreenID(id)]; ok && screen.ID != domain.ScreenSplash {
		return screen
	}
	return s.byID[domain.ScreenHome]
}

func (s *NavigationService) Start() domain.Screen {
	return s.byID[domain.ScreenSplash]
}

func (s *NavigationService) CompleteSplash() domain.Screen {
	return s.byID[domain.ScreenHome]
}

func (s *NavigationService) Menu() []domain.MenuItem {
	return menu
}

var _ NavigationUseCase = (*NavigationService)(nil)
