package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Section(
		ID("home"),
		Class("hero"),
		Div(
			Class("container hero-inner"),
			H1(
				Class("hero-title"),
				g.Text("Compassionate Home Care at the Heart of Birmingham"),
			),
			P(
				Class("hero-lead"),
				g.Text("Empowering independence, ensuring dignity, and providing tailored support in the comfort of your home."),
			),
			A(
				Href("#contact"),
				Class("btn btn-primary btn-lg"),
				g.Text("Get Started Today"),
			),
		),
	)
}
