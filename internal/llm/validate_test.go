package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readingSchema() *Schema {
	return &Schema{
		Name:        "test-reading",
		Description: "A threshold reading",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"label":        map[string]any{"type": "string"},
				"threshold_db": map[string]any{"type": "integer", "minimum": -10},
				"ear":          map[string]any{"type": "string", "enum": []any{"right", "left"}},
				"levels": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"label", "threshold_db"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"all fields", `{"label":"1kHz","threshold_db":20,"ear":"right"}`, true},
		{"optional fields omitted", `{"label":"2kHz","threshold_db":35}`, true},
		{"nested array", `{"label":"4kHz","threshold_db":10,"levels":[10,20,40]}`, true},
		{"missing required", `{"label":"4kHz"}`, false},
		{"wrong type", `{"label":"8kHz","threshold_db":"ten"}`, false},
		{"below minimum", `{"label":"8kHz","threshold_db":-20}`, false},
		{"enum violation", `{"label":"500Hz","threshold_db":10,"ear":"both"}`, false},
		{"wrong item type", `{"label":"4kHz","threshold_db":10,"levels":["a"]}`, false},
		{"malformed", `{not json}`, false},
		{"empty", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(readingSchema(), json.RawMessage(tt.raw))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var inv *ErrInvalidResponse
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, tt.raw, string(inv.Content))
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)))
}

func TestValidateResponse_BadSchema(t *testing.T) {
	s := &Schema{Name: "broken", Definition: map[string]any{"type": 42}}
	assert.Error(t, validateResponse(s, json.RawMessage(`{}`)))
}

func TestValidateResponse_CachesBySchemaName(t *testing.T) {
	s := readingSchema()
	require.NoError(t, validateResponse(s, json.RawMessage(`{"label":"a","threshold_db":0}`)))
	compiledSchemas.Lock()
	_, ok := compiledSchemas.byName[s.Name]
	compiledSchemas.Unlock()
	assert.True(t, ok)
}
