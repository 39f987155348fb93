package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "gemini-2.0-pro", resolveModel("gemini-pro", geminiModels))
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-2.5-flash", geminiModels))
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "per-ear summary",
		"properties": map[string]any{
			"ear":      map[string]any{"type": "string", "enum": []string{"right", "left"}},
			"average":  map[string]any{"type": "number"},
			"detected": map[string]any{"type": "boolean"},
			"levels": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
			"odd": map[string]any{"type": "null"},
		},
		"required": []any{"ear", "average"},
	}

	got := buildGeminiSchema(def)

	assert.Equal(t, genai.TypeObject, got.Type)
	assert.Equal(t, "per-ear summary", got.Description)
	require.Len(t, got.Properties, 5)
	assert.Equal(t, []string{"right", "left"}, got.Properties["ear"].Enum)
	assert.Equal(t, genai.TypeNumber, got.Properties["average"].Type)
	assert.Equal(t, genai.TypeBoolean, got.Properties["detected"].Type)
	require.NotNil(t, got.Properties["levels"].Items)
	assert.Equal(t, genai.TypeInteger, got.Properties["levels"].Items.Type)
	assert.Equal(t, genai.TypeString, got.Properties["odd"].Type, "unknown types fall back to string")
	assert.ElementsMatch(t, []string{"ear", "average"}, got.Required)
}
