package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(name string) g.Node {
	return Div(
		Class("logo"),
		Icon("lucide--heart-pulse size-6", ""),
		Span(
			Class("logo-text"),
			g.Text(name),
		),
	)
}

// convertIconName turns "lucide--heart size-6" into the iconify name "lucide:heart"
func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	classes := "iconify icon"
	if size := extractSizeClasses(iconClass); size != "" {
		classes = fmt.Sprintf("iconify icon %s", size)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

// postButton is a one-button form; the page works without JavaScript.
func postButton(action, class string, content ...g.Node) g.Node {
	return formEl(
		Method("post"),
		Action(action),
		Class("inline-form"),
		Button(
			Type("submit"),
			Class(class),
			g.Group(content),
		),
	)
}

func sectionHeading(title string) g.Node {
	return H2(Class("section-title"), g.Text(title))
}

func formEl(children ...g.Node) g.Node {
	return g.El("form", children...)
}

func labelEl(children ...g.Node) g.Node {
	return g.El("label", children...)
}
