// internal/actions/models_test.go
package actions

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Event Normalization Tests
// ==========================

func TestNormalizeEvent_ParameterShapes(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected map[string]string
	}{
		{
			name:     "list of name-value pairs",
			raw:      `{"function":"f","actionGroup":"g","parameters":[{"name":"query","value":"hello"},{"name":"user_id","value":"u1"}]}`,
			expected: map[string]string{"query": "hello", "user_id": "u1"},
		},
		{
			name:     "already-flat mapping",
			raw:      `{"function":"f","actionGroup":"g","parameters":{"query":"hello","user_id":"u1"}}`,
			expected: map[string]string{"query": "hello", "user_id": "u1"},
		},
		{
			name:     "missing parameters",
			raw:      `{"function":"f","actionGroup":"g"}`,
			expected: map[string]string{},
		},
		{
			name:     "malformed parameters",
			raw:      `{"function":"f","parameters":42}`,
			expected: map[string]string{},
		},
		{
			name:     "non-string mapping values are coerced",
			raw:      `{"function":"f","parameters":{"limit":3}}`,
			expected: map[string]string{"limit": "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := NormalizeEvent(json.RawMessage(tt.raw))
			assert.Equal(t, tt.expected, event.Parameters)
		})
	}
}

func TestNormalizeEvent_NormalizationIsIdempotent(t *testing.T) {
	asList := NormalizeEvent(json.RawMessage(
		`{"function":"f","parameters":[{"name":"a","value":"1"},{"name":"b","value":"2"}]}`))
	asMap := NormalizeEvent(json.RawMessage(
		`{"function":"f","parameters":{"a":"1","b":"2"}}`))

	assert.Equal(t, asList.Parameters, asMap.Parameters)
}

func TestNormalizeEvent_SequenceUnwrapping(t *testing.T) {
	tests := []struct {
		name             string
		raw              string
		expectedFunction string
	}{
		{
			name:             "single-element sequence unwraps to first element",
			raw:              `[{"function":"get_portfolio_balance","actionGroup":"portfolio"}]`,
			expectedFunction: "get_portfolio_balance",
		},
		{
			name:             "empty sequence yields empty event",
			raw:              `[]`,
			expectedFunction: "",
		},
		{
			name:             "garbage yields empty event",
			raw:              `not json at all`,
			expectedFunction: "",
		},
		{
			name:             "empty input yields empty event",
			raw:              ``,
			expectedFunction: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := NormalizeEvent(json.RawMessage(tt.raw))
			assert.Equal(t, tt.expectedFunction, event.Function)
			assert.NotNil(t, event.Parameters)
		})
	}
}

func TestNormalizeEvent_InputTextFallbackField(t *testing.T) {
	event := NormalizeEvent(json.RawMessage(`{"inputText":"what is an ETF?"}`))

	assert.Empty(t, event.Function)
	assert.Equal(t, "what is an ETF?", event.InputText)
}

// ==========================
// Result Envelope Tests
// ==========================

func TestNewResult_Envelope(t *testing.T) {
	result := NewResult("portfolio", "get_portfolio_balance", "all good")

	assert.Equal(t, "1.0", result.MessageVersion)
	assert.Equal(t, "portfolio", result.Response.ActionGroup)
	assert.Equal(t, "get_portfolio_balance", result.Response.Function)
	assert.Equal(t, "all good", result.Body())

	encoded, err := json.Marshal(result)
	assert.NoError(t, err)
	assert.Contains(t, string(encoded), `"messageVersion":"1.0"`)
	assert.Contains(t, string(encoded), `"TEXT":{"body":"all good"}`)
}
