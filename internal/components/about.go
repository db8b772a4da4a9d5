package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Fawzia2025/cb-care-live/domain/catalog"
)

func About(siteName string, values []catalog.Value) g.Node {
	return Section(
		ID("about"),
		Class("section about"),
		Div(
			Class("container"),
			sectionHeading("About "+siteName),
			P(
				Class("about-text"),
				g.Text(siteName+" is a dedicated domiciliary care and living support business based in Birmingham, UK. "+
					"We are committed to providing high-quality, person-centred care that enables individuals to live independently "+
					"and with dignity in their own homes."),
			),
			P(
				Class("about-text"),
				g.Text("Our team is passionate about providing individualized care that respects each person's unique needs, "+
					"preferences, and choices. We work closely with service users and their families to create tailored care plans "+
					"that promote well-being and enhance quality of life."),
			),

			H3(Class("subsection-title"), g.Text("Our Core Values")),
			Div(
				Class("values-grid"),
				g.Group(g.Map(values, valueCard)),
			),
		),
	)
}

func valueCard(v catalog.Value) g.Node {
	return Div(
		Class("card value-card"),
		Icon(v.Icon+" size-10", ""),
		H4(Class("card-title"), g.Text(v.Title)),
		P(g.Text(v.Description)),
	)
}
