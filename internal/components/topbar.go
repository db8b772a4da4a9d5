package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Label  string
	Target string
}

var navItems = []navItem{
	{"Home", "#home"},
	{"About Us", "#about"},
	{"Services", "#services"},
	{"Contact", "#contact"},
}

// NavTargets lists the in-page anchors the navigation links to
func NavTargets() []string {
	out := make([]string, 0, len(navItems))
	for _, item := range navItems {
		out = append(out, item.Target)
	}
	return out
}

func Topbar(siteName string, menuOpen bool) g.Node {
	toggleLabel := "Open menu"
	toggleIcon := "lucide--menu size-6"
	if menuOpen {
		toggleLabel = "Close menu"
		toggleIcon = "lucide--x size-6"
	}

	return Header(
		Class("topbar"),
		Div(
			Class("container topbar-inner"),

			A(Href("#home"), Logo(siteName)),

			Nav(
				Class("nav-desktop"),
				Ul(
					g.Group(g.Map(navItems, func(item navItem) g.Node {
						return Li(A(Href(item.Target), g.Text(item.Label)))
					})),
				),
			),

			formEl(
				Method("post"),
				Action("/menu/toggle"),
				Class("nav-toggle"),
				Button(
					Type("submit"),
					Class("btn btn-ghost"),
					g.Attr("aria-expanded", boolAttr(menuOpen)),
					g.Attr("aria-controls", "mobile-menu"),
					Icon(toggleIcon, toggleLabel),
				),
			),
		),

		g.If(menuOpen,
			Nav(
				ID("mobile-menu"),
				Class("nav-mobile"),
				Ul(
					g.Group(g.Map(navItems, func(item navItem) g.Node {
						return Li(
							formEl(
								Method("post"),
								Action("/menu/close"),
								Input(Type("hidden"), Name("target"), Value(item.Target)),
								Button(Type("submit"), Class("nav-mobile-link"), g.Text(item.Label)),
							),
						)
					})),
				),
			),
		),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
