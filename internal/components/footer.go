package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(siteName string, year int) g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container footer-inner"),
			P(g.Text(fmt.Sprintf("© %d %s Limited. All rights reserved.", year, siteName))),
			Div(
				Class("footer-links"),
				A(Href("#"), g.Text("Privacy Policy")),
				A(Href("#"), g.Text("Terms of Service")),
			),
		),
	)
}
