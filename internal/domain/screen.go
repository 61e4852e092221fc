package domain

type ScreenID string

const (
	ScreenSplash         ScreenID = "splash"
	ScreenHome           ScreenID = "home"
	ScreenExplore        ScreenID = "explore"
	ScreenTripPlanner    ScreenID = "trip-planner"
	ScreenProfile        ScreenID = "profile"
	ScreenQRDownload     ScreenID = "qr-download"
	ScreenJournal        ScreenID = "journal"
	ScreenMap            ScreenID = "map"
	ScreenBookTickets    ScreenID = "book-tickets"
	ScreenNearbyServices ScreenID = "nearby-services"
	ScreenMyDocuments    ScreenID = "my-documents"
	ScreenInsurance      ScreenID = "travel-insurance"
	ScreenHelp           ScreenID = "help"
	ScreenEmergency      ScreenID = "emergency"
	ScreenAdvisory       ScreenID = "travel-advisory"
	ScreenReportIssue    ScreenID = "report-issue"
	ScreenLogin          ScreenID = "login"
)

type Screen struct {
	ID        ScreenID `json:"id"`
	Title     string   `json:"title"`
	Available bool     `json:"available"`
	// Renders names the screen actually drawn, when it differs from ID.
	Renders ScreenID `json:"renders,omitempty"`
}

type MenuGroup string

const (
	MenuGroupMain    MenuGroup = "main"
	MenuGroupTools   MenuGroup = "tools"
	MenuGroupSupport MenuGroup = "support"
)

type MenuItem struct {
	ID    ScreenID  `json:"id"`
	Title string    `json:"title"`
	Group MenuGroup `json:"group"`
}
