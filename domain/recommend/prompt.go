package recommend

import (
	"strings"

	"github.com/Fawzia2025/cb-care-live/domain/catalog"
)

const promptPreamble = `You are a helpful assistant for Central Bridge Care, a domiciliary care provider in Birmingham.
Based on the user's described needs, recommend one or more of our services. Explain why the recommended service(s) are a good fit.
If no services are a perfect fit, suggest contacting us for a custom solution.

Our available services are:
`

const promptClosing = "Please provide your recommendation in a clear, friendly, and concise manner, directly addressing the user's needs."

// ServiceListing renders one "- <name>: <short description>" line per entry
func ServiceListing(entries []catalog.Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, "- "+e.Name+": "+e.ShortDescription)
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt embeds the full catalog and the visitor's needs, verbatim,
// in the instruction sent to the model.
func BuildPrompt(entries []catalog.Entry, needs string) string {
	var b strings.Builder
	b.WriteString(promptPreamble)
	b.WriteString(ServiceListing(entries))
	b.WriteString("\n\nUser's needs: \"")
	b.WriteString(needs)
	b.WriteString("\"\n\n")
	b.WriteString(promptClosing)
	return b.String()
}
