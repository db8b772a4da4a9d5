package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Fawzia2025/cb-care-live/internal/viewstate"
)

type ContactDetails struct {
	Phone string
	Email string
}

func Contact(state viewstate.Page, details ContactDetails) g.Node {
	return Section(
		ID("contact"),
		Class("section contact"),
		Div(
			Class("container"),
			sectionHeading("Contact Us"),
			Div(
				Class("contact-grid"),
				recommendationCard(state.Needs, state.Recommendation),
				Div(
					messageCard(state.Contact, state.ContactStatus),
					directContact(details),
				),
			),
		),
	)
}

func recommendationCard(needs string, result viewstate.Result) g.Node {
	pending := result.State == viewstate.Pending

	return Div(
		ID("recommendation"),
		Class("card"),
		H3(Class("card-title"), g.Text("Care Recommendation Assistant")),
		formEl(
			Method("post"),
			Action("/recommendation"),
			g.Attr("data-pending-label", "Generating..."),
			labelEl(g.Attr("for", "needs"), g.Text("My Needs:")),
			Textarea(
				ID("needs"),
				Name("needs"),
				g.Attr("rows", "4"),
				Placeholder("E.g., My mum is elderly, lives alone, sometimes forgets medication, and needs companionship."),
				g.Text(needs),
			),
			submitButton(pending, "Get Recommendation", "Generating..."),
		),
		recommendationResult(result),
	)
}

func recommendationResult(result viewstate.Result) g.Node {
	switch result.State {
	case viewstate.Succeeded:
		return Div(
			Class("result result-success"),
			H4(g.Text("Our Recommendation:")),
			Div(Class("prose"), Markdown(result.Text)),
		)
	case viewstate.Failed:
		return P(Class("result result-error"), g.Attr("role", "alert"), g.Text(result.Text))
	default:
		return nil
	}
}

func messageCard(form viewstate.ContactForm, status viewstate.Result) g.Node {
	pending := status.State == viewstate.Pending

	return Div(
		ID("message"),
		Class("card"),
		H3(Class("card-title"), g.Text("Or Send Us a Message")),
		formEl(
			Method("post"),
			Action("/contact"),
			g.Attr("data-pending-label", "Sending..."),
			labelEl(g.Attr("for", "name"), g.Text("Name")),
			Input(Type("text"), ID("name"), Name("name"), Value(form.Name), Required()),
			labelEl(g.Attr("for", "email"), g.Text("Email")),
			Input(Type("email"), ID("email"), Name("email"), Value(form.Email), Required()),
			labelEl(g.Attr("for", "message-body"), g.Text("Message")),
			Textarea(ID("message-body"), Name("message"), g.Attr("rows", "4"), Required(), g.Text(form.Message)),
			submitButton(pending, "Send Message", "Sending..."),
		),
		contactStatus(status),
	)
}

func contactStatus(status viewstate.Result) g.Node {
	switch status.State {
	case viewstate.Succeeded:
		return P(Class("result result-success"), g.Attr("role", "status"), g.Text(status.Text))
	case viewstate.Failed:
		return P(Class("result result-error"), g.Attr("role", "alert"), g.Text(status.Text))
	default:
		return nil
	}
}

// submitButton is disabled while its flow is pending so the trigger is inert
func submitButton(pending bool, label, pendingLabel string) g.Node {
	if pending {
		return Button(Type("submit"), Class("btn btn-primary"), Disabled(), g.Text(pendingLabel))
	}
	return Button(Type("submit"), Class("btn btn-primary"), g.Text(label))
}

func directContact(details ContactDetails) g.Node {
	if details.Phone == "" && details.Email == "" {
		return nil
	}

	return Div(
		Class("direct-contact"),
		P(g.Text("Alternatively, call us directly:")),
		g.If(details.Phone != "",
			A(Href("tel:"+details.Phone), Icon("lucide--phone size-4", ""), g.Text(" "+details.Phone)),
		),
		g.If(details.Email != "",
			A(Href("mailto:"+details.Email), Icon("lucide--mail size-4", ""), g.Text(" "+details.Email)),
		),
	)
}
