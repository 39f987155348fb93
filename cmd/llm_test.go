package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hearwise/internal/store"
)

func llmEvent(id int, purpose string, ok bool) store.LLMEventRecord {
	return store.LLMEventRecord{
		ID:        id,
		Timestamp: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
		LLMRequestEventData: store.LLMRequestEventData{
			Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: purpose,
			InputTokens: 800, OutputTokens: 200, LatencyMs: 1200, Success: ok,
		},
	}
}

func TestWriteLLMList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeLLMList(&buf, nil))
	assert.Equal(t, "No LLM requests recorded.\n", buf.String())

	buf.Reset()
	events := []store.LLMEventRecord{llmEvent(2, "explain", false), llmEvent(1, "explain", true), llmEvent(3, "other", true)}
	require.NoError(t, writeLLMList(&buf, filterPurpose(events, "explain")))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "PURPOSE")
	assert.True(t, strings.HasPrefix(lines[1], "2 "))
	assert.Contains(t, lines[1], " no")
	assert.Contains(t, lines[2], " yes")
}

func TestWriteLLMEvent(t *testing.T) {
	e := llmEvent(7, "explain", false)
	e.ErrorMessage = "rate limited"
	e.RequestBody = "[user]\nExplain"

	var buf bytes.Buffer
	writeLLMEvent(&buf, e)
	out := buf.String()
	assert.Contains(t, out, "failed: rate limited")
	assert.Contains(t, out, "── REQUEST")
	assert.Contains(t, out, "[user]\nExplain")
	assert.Contains(t, out, "(not captured)", "missing response body")
}

func TestWriteLLMStats(t *testing.T) {
	var buf bytes.Buffer
	err := writeLLMStats(&buf,
		[]store.PurposeUsage{{Purpose: "explain", Calls: 2, InputTokens: 1600, OutputTokens: 400, AvgLatencyMs: 900}},
		[]store.ModelUsage{
			{Model: "claude-haiku-4-5-20251001", Calls: 1, InputTokens: 1_000_000, OutputTokens: 0},
			{Model: "local-llama", Calls: 1},
		})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "$1.00")
	assert.Contains(t, out, "total (partial)")
	assert.Contains(t, out, "No pricing for: local-llama")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 8))
	assert.Equal(t, "abcdefg…", truncate("abcdefghij", 8))
}

func TestWriteVersion(t *testing.T) {
	var buf bytes.Buffer
	writeVersion(&buf, "v0.3.0", &debug.BuildInfo{
		GoVersion: "go1.25.6",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "GOOS", Value: "linux"},
		},
	})
	out := buf.String()
	assert.Contains(t, out, "hearwise v0.3.0")
	assert.Contains(t, out, "go1.25.6")
	assert.Contains(t, out, "revision: abc123")
	assert.NotContains(t, out, "linux")

	buf.Reset()
	writeVersion(&buf, "(devel)", nil)
	assert.Equal(t, "hearwise (devel)\n", buf.String())
}
