// Package report renders a finished hearing record for people and tools.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/scoring"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text or csv)", s)
}

// Disclaimer is appended to every human-readable report.
const Disclaimer = "This is a screening result, not a medical diagnosis. See a hearing professional for a full assessment."

// CSVHeader is the first row of a CSV report.
var CSVHeader = []string{"frequency_hz", "ear", "threshold_db", "detected"}

// Render writes rec and its summary to w.
func Render(w io.Writer, f Format, rec audiometry.Record, sum scoring.Summary) error {
	switch f {
	case FormatText:
		return renderText(w, rec, sum)
	case FormatCSV:
		return renderCSV(w, rec)
	}
	return fmt.Errorf("unknown report format %q", f)
}

var (
	cellStyle  = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
	labelStyle = lipgloss.NewStyle().Width(10).Align(lipgloss.Left)
)

// ThresholdLabel formats a threshold for display.
func ThresholdLabel(th audiometry.Threshold) string {
	if db, ok := th.DB(); ok {
		return fmt.Sprintf("%d dB", db)
	}
	return "NR"
}

// EarLine summarizes one ear's score in a single line.
func EarLine(ear audiometry.Ear, es scoring.EarScore) string {
	name := "Right ear"
	if ear == audiometry.Left {
		name = "Left ear"
	}
	if !es.Defined {
		return fmt.Sprintf("%s: %s (no tone detected)", name, es.Band)
	}
	return fmt.Sprintf("%s: %s (average %.1f dB HL over %d of %d frequencies)",
		name, es.Band, es.Average, es.Measured, len(audiometry.Frequencies))
}

func renderText(w io.Writer, rec audiometry.Record, sum scoring.Summary) error {
	var b strings.Builder
	b.WriteString("Hearing screening report\n")
	fmt.Fprintf(&b, "Record: %s\n", rec.ID())
	fmt.Fprintf(&b, "User:   %s\n", rec.UserID())
	fmt.Fprintf(&b, "Taken:  %s\n\n", rec.TakenAt().Local().Format("2006-01-02 15:04"))

	b.WriteString(labelStyle.Render("Frequency") + cellStyle.Render("Right") + cellStyle.Render("Left") + "\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, f := range audiometry.Frequencies {
		right, _ := rec.Lookup(f, audiometry.Right)
		left, _ := rec.Lookup(f, audiometry.Left)
		b.WriteString(labelStyle.Render(f.String()) +
			cellStyle.Render(ThresholdLabel(right)) +
			cellStyle.Render(ThresholdLabel(left)) + "\n")
	}
	b.WriteString("\n")

	for _, ear := range audiometry.Ears {
		es := sum.Ear(ear)
		b.WriteString(EarLine(ear, es) + "\n")
		b.WriteString("  " + es.Interpretation + "\n")
	}
	b.WriteString("\n" + Disclaimer + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderCSV(w io.Writer, rec audiometry.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, res := range rec.Results() {
		db, ok := res.Threshold.DB()
		level := ""
		if ok {
			level = strconv.Itoa(db)
		}
		row := []string{strconv.Itoa(int(res.Frequency)), res.Ear.String(), level, strconv.FormatBool(ok)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
