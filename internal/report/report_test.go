package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/scoring"
)

func sampleRecord() audiometry.Record {
	var results []audiometry.Result
	for _, ear := range audiometry.Ears {
		for i, f := range audiometry.Frequencies {
			th := audiometry.Heard(audiometry.Level(i + 2))
			if ear == audiometry.Left && f == 8000 {
				th = audiometry.NotDetected()
			}
			results = append(results, audiometry.Result{Frequency: f, Ear: ear, Threshold: th})
		}
	}
	return audiometry.NewRecord("rec-42", "alice", time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC), results)
}

func TestRenderCSV(t *testing.T) {
	rec := sampleRecord()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatCSV, rec, scoring.Score(rec)))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 13)
	assert.Equal(t, CSVHeader, rows[0])
	assert.Equal(t, []string{"250", "right", "10", "true"}, rows[1])
	assert.Equal(t, []string{"8000", "left", "", "false"}, rows[12])
}

func TestRenderText(t *testing.T) {
	rec := sampleRecord()
	sum := scoring.Score(rec)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, rec, sum))

	out := buf.String()
	assert.Contains(t, out, "Record: rec-42")
	assert.Contains(t, out, "User:   alice")
	assert.Contains(t, out, "NR")
	assert.Contains(t, out, sum.Right.Interpretation)
	assert.Contains(t, out, "Right ear: "+sum.Right.Band.String())
	assert.Contains(t, out, "over 5 of 6 frequencies")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), Disclaimer))

	var row string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "1kHz") {
			row = line
		}
	}
	require.NotEmpty(t, row)
	assert.Equal(t, []string{"1kHz", "30", "dB", "30", "dB"}, strings.Fields(row))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)

	assert.Error(t, Render(&bytes.Buffer{}, Format("pdf"), sampleRecord(), scoring.Summary{}))
}

func TestEarLineUndefined(t *testing.T) {
	line := EarLine(audiometry.Left, scoring.ScoreEar([]audiometry.Threshold{audiometry.NotDetected()}))
	assert.Equal(t, "Left ear: profound (no tone detected)", line)
}
