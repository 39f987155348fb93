// Package explain turns a finished screening record into a short
// plain-language explanation using an LLM provider.
package explain

import "strings"

// Disclaimer is appended locally to every explanation, whatever the model
// returns.
const Disclaimer = "This explanation is generated automatically from a self-administered screening. " +
	"It is not a medical diagnosis. See an audiologist if you have concerns about your hearing."

// Explanation is the generated text for one record.
type Explanation struct {
	RecordID  string
	Headline  string
	Summary   string
	Right     string
	Left      string
	NextSteps []string
	Model     string
}

// Text renders the explanation as plain text followed by the disclaimer.
func (e Explanation) Text() string {
	var b strings.Builder
	b.WriteString(e.Headline)
	b.WriteString("\n\n")
	b.WriteString(e.Summary)
	b.WriteString("\n\n")
	b.WriteString("Right ear: " + e.Right + "\n")
	b.WriteString("Left ear: " + e.Left + "\n")
	if len(e.NextSteps) > 0 {
		b.WriteString("\nNext steps:\n")
		for _, s := range e.NextSteps {
			b.WriteString("  - " + s + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(Disclaimer)
	b.WriteString("\n")
	return b.String()
}
