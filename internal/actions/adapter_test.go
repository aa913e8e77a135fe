// internal/actions/adapter_test.go
package actions

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/therandomindian/investment-agent-system/internal/common/logger"
)

// ==========================
// Test Helpers
// ==========================

type stubHandler struct {
	name     string
	required []string
	body     string
	err      error
	panicMsg string
	lastCall map[string]string
}

func (s *stubHandler) Name() string       { return s.name }
func (s *stubHandler) Required() []string { return s.required }

func (s *stubHandler) Execute(_ context.Context, params map[string]string) (string, error) {
	s.lastCall = params
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.body, s.err
}

func newTestAdapter(handlers ...Handler) *Adapter {
	return NewAdapter(logger.NewNoOpLogger(), handlers...)
}

// ==========================
// Dispatch Tests
// ==========================

func TestAdapter_Handle_Success(t *testing.T) {
	h := &stubHandler{name: "check_subscription", required: []string{"user_id"}, body: "ok"}
	adapter := newTestAdapter(h)

	result := adapter.Handle(context.Background(), json.RawMessage(
		`{"function":"check_subscription","actionGroup":"subs","parameters":[{"name":"user_id","value":"u1"}]}`))

	assert.Equal(t, "ok", result.Body())
	assert.Equal(t, "subs", result.Response.ActionGroup)
	assert.Equal(t, "check_subscription", result.Response.Function)
	assert.Equal(t, "u1", h.lastCall["user_id"])
}

func TestAdapter_Handle_UnknownFunction(t *testing.T) {
	adapter := newTestAdapter(&stubHandler{name: "known"})

	result := adapter.Handle(context.Background(), json.RawMessage(
		`{"function":"mystery","actionGroup":"g"}`))

	assert.Equal(t, "Error: Unknown function: mystery", result.Body())
}

func TestAdapter_Handle_MissingRequiredParameter(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "parameter absent",
			raw:      `{"function":"check_subscription","parameters":[]}`,
			expected: "Error: Missing 'user_id' parameter",
		},
		{
			name:     "parameter present but empty",
			raw:      `{"function":"check_subscription","parameters":[{"name":"user_id","value":""}]}`,
			expected: "Error: Missing 'user_id' parameter",
		},
	}

	h := &stubHandler{name: "check_subscription", required: []string{"user_id"}}
	adapter := newTestAdapter(h)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := adapter.Handle(context.Background(), json.RawMessage(tt.raw))
			assert.Equal(t, tt.expected, result.Body())
		})
	}
}

func TestAdapter_Handle_HandlerError(t *testing.T) {
	h := &stubHandler{name: "subscribe_to_service", err: errors.New("upstream down")}
	adapter := newTestAdapter(h)

	result := adapter.Handle(context.Background(), json.RawMessage(
		`{"function":"subscribe_to_service"}`))

	assert.Equal(t, "Error calling subscribe_to_service: upstream down", result.Body())
}

func TestAdapter_Handle_PanicIsAbsorbed(t *testing.T) {
	h := &stubHandler{name: "boom", panicMsg: "nil map write"}
	adapter := newTestAdapter(h)

	result := adapter.Handle(context.Background(), json.RawMessage(`{"function":"boom"}`))

	assert.Equal(t, "Error handling function call: nil map write", result.Body())
	assert.Equal(t, "1.0", result.MessageVersion)
}

func TestAdapter_Handle_SingleElementSequence(t *testing.T) {
	h := &stubHandler{name: "get_portfolio_balance", body: "balance text"}
	adapter := newTestAdapter(h)

	result := adapter.Handle(context.Background(), json.RawMessage(
		`[{"function":"get_portfolio_balance","actionGroup":"portfolio"}]`))

	assert.Equal(t, "balance text", result.Body())
	assert.Equal(t, "portfolio", result.Response.ActionGroup)
}

// ==========================
// Direct Invocation Tests
// ==========================

func TestAdapter_Handle_InputTextFallback(t *testing.T) {
	h := &stubHandler{name: "invoke_general_advice_agent", required: []string{"query"}, body: "advice"}
	adapter := newTestAdapter(h)
	adapter.SetDirectInvocationTarget("invoke_general_advice_agent")

	result := adapter.Handle(context.Background(), json.RawMessage(
		`{"inputText":"should I buy bonds?"}`))

	assert.Equal(t, "advice", result.Body())
	assert.Equal(t, "should I buy bonds?", h.lastCall["query"])
}

func TestAdapter_Handle_InputTextWithoutTarget(t *testing.T) {
	adapter := newTestAdapter(&stubHandler{name: "invoke_general_advice_agent"})

	result := adapter.Handle(context.Background(), json.RawMessage(
		`{"inputText":"should I buy bonds?"}`))

	assert.Equal(t, "Error: Unknown function: ", result.Body())
}

func TestAdapter_Functions(t *testing.T) {
	adapter := newTestAdapter(&stubHandler{name: "a"}, &stubHandler{name: "b"})

	assert.ElementsMatch(t, []string{"a", "b"}, adapter.Functions())
}
