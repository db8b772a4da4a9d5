package components

import (
	g "maragu.dev/gomponents"

	"github.com/Fawzia2025/cb-care-live/domain/catalog"
	"github.com/Fawzia2025/cb-care-live/internal/viewstate"
)

// PageData is everything the landing page renders from
type PageData struct {
	SiteName string
	Contact  ContactDetails
	Year     int
	Entries  []catalog.Entry
	Values   []catalog.Value
	Selected *catalog.Entry
	State    viewstate.Page
}

func LandingPage(data PageData) g.Node {
	return Layout(
		PageConfig{},
		Topbar(data.SiteName, data.State.MenuOpen),
		Hero(),
		About(data.SiteName, data.Values),
		Services(data.Entries, data.Selected),
		Contact(data.State, data.Contact),
		PageFooter(data.SiteName, data.Year),
	)
}
