package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Fawzia2025/cb-care-live/domain/catalog"
)

// Services renders the catalog list, or the detail of selected when it is
// non-nil. Never both.
func Services(entries []catalog.Entry, selected *catalog.Entry) g.Node {
	var body g.Node
	if selected != nil {
		body = serviceDetail(*selected)
	} else {
		body = serviceList(entries)
	}

	return Section(
		ID("services"),
		Class("section services"),
		Div(
			Class("container"),
			sectionHeading("Our Services"),
			body,
		),
	)
}

func serviceList(entries []catalog.Entry) g.Node {
	return Div(
		Class("services-grid"),
		g.Attr("data-view", "list"),
		g.Group(g.Map(entries, func(e catalog.Entry) g.Node {
			return Div(
				Class("card service-card"),
				H3(Class("card-title"), g.Text(e.Name)),
				P(g.Text(e.ShortDescription)),
				postButton("/services/"+e.Slug, "btn btn-link", g.Text("Learn More")),
			)
		})),
	)
}

func serviceDetail(e catalog.Entry) g.Node {
	return Article(
		Class("card service-detail"),
		g.Attr("data-view", "detail"),
		postButton("/services/back", "btn btn-ghost",
			Icon("lucide--arrow-left size-4", ""),
			g.Text("Back to All Services"),
		),
		H3(Class("detail-title"), g.Text(e.Name)),
		P(Class("detail-text"), g.Text(e.LongDescription)),
		P(
			Class("detail-note"),
			g.Text("For more detailed information or to discuss a personalized care plan, please contact us directly."),
		),
	)
}
