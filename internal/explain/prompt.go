package explain

import (
	"fmt"
	"strings"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/scoring"
)

const systemPrompt = `You explain the results of a self-administered pure-tone hearing screening to a non-expert.
Thresholds are the quietest level, in dB HL, at which the person reported hearing a tone; lower is better.
"not detected" means the person never reported hearing that tone, even at the loudest level.
Be calm, concrete and brief. Never diagnose a condition, name a disease or suggest medication.
When any ear falls outside the normal range, recommend a professional hearing test.`

func buildUserMessage(rec audiometry.Record, sum scoring.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Screening taken: %s\n\n", rec.TakenAt().Format("2006-01-02"))
	for _, ear := range audiometry.Ears {
		score := sum.Ear(ear)
		fmt.Fprintf(&b, "%s ear thresholds:\n", strings.ToUpper(ear.String()[:1])+ear.String()[1:])
		for _, f := range audiometry.Frequencies {
			th, ok := rec.Lookup(f, ear)
			if !ok {
				continue
			}
			if db, ok := th.DB(); ok {
				fmt.Fprintf(&b, "- %s: %d dB HL\n", f, db)
			} else {
				fmt.Fprintf(&b, "- %s: not detected\n", f)
			}
		}
		if score.Defined {
			fmt.Fprintf(&b, "Average of measured thresholds: %.1f dB HL\n", score.Average)
		} else {
			b.WriteString("Average: none of the tones were detected\n")
		}
		fmt.Fprintf(&b, "Category: %s (%s)\n\n", score.Band, score.Interpretation)
	}

	b.WriteString("Explain what this means for everyday listening and what to do next.")
	return b.String()
}
