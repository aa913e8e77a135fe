// internal/actions/models.go
package actions

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FunctionCallEvent is the normalized form of an inbound "the specialist
// wants to call function X" event. Parameters are always a flat name→value
// mapping regardless of which wire shape arrived.
type FunctionCallEvent struct {
	Function    string
	ActionGroup string
	Parameters  map[string]string
	// InputText carries the direct-invocation fallback: some callers send a
	// bare prompt instead of a function-call envelope.
	InputText string
}

// Result is the reply envelope the specialist runtime expects. It is always
// produced, even on internal failure; the body then carries a human-readable
// error string.
type Result struct {
	MessageVersion string         `json:"messageVersion"`
	Response       ResultResponse `json:"response"`
}

type ResultResponse struct {
	ActionGroup      string           `json:"actionGroup"`
	Function         string           `json:"function"`
	FunctionResponse FunctionResponse `json:"functionResponse"`
}

type FunctionResponse struct {
	ResponseBody ResponseBody `json:"responseBody"`
}

type ResponseBody struct {
	Text TextBody `json:"TEXT"`
}

type TextBody struct {
	Body string `json:"body"`
}

// NewResult wraps body text in the fixed messageVersion 1.0 envelope.
func NewResult(actionGroup, function, body string) Result {
	return Result{
		MessageVersion: "1.0",
		Response: ResultResponse{
			ActionGroup: actionGroup,
			Function:    function,
			FunctionResponse: FunctionResponse{
				ResponseBody: ResponseBody{
					Text: TextBody{Body: body},
				},
			},
		},
	}
}

// Body returns the wrapped text for logging and tests.
func (r Result) Body() string {
	return r.Response.FunctionResponse.ResponseBody.Text.Body
}

// NormalizeEvent coerces any of the accepted wire shapes into a
// FunctionCallEvent. A single-element sequence is unwrapped to its first
// element; unknown or malformed shapes yield an empty event rather than an
// error.
func NormalizeEvent(raw json.RawMessage) FunctionCallEvent {
	empty := FunctionCallEvent{Parameters: map[string]string{}}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return empty
	}
	if trimmed[0] == '[' {
		var seq []json.RawMessage
		if err := json.Unmarshal(trimmed, &seq); err != nil || len(seq) == 0 {
			return empty
		}
		trimmed = bytes.TrimSpace(seq[0])
	}

	var envelope struct {
		Function    string          `json:"function"`
		ActionGroup string          `json:"actionGroup"`
		Parameters  json.RawMessage `json:"parameters"`
		InputText   string          `json:"inputText"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return empty
	}

	return FunctionCallEvent{
		Function:    envelope.Function,
		ActionGroup: envelope.ActionGroup,
		Parameters:  normalizeParameters(envelope.Parameters),
		InputText:   envelope.InputText,
	}
}

// normalizeParameters accepts either the ordered [{name, value}] sequence or
// an already-flat mapping; both coerce to the same name→value map.
func normalizeParameters(raw json.RawMessage) map[string]string {
	params := map[string]string{}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return params
	}

	var pairs []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(trimmed, &pairs); err == nil {
		for _, p := range pairs {
			if p.Name != "" {
				params[p.Name] = p.Value
			}
		}
		return params
	}

	var flat map[string]interface{}
	if err := json.Unmarshal(trimmed, &flat); err == nil {
		for k, v := range flat {
			if s, isString := v.(string); isString {
				params[k] = s
			} else {
				params[k] = fmt.Sprint(v)
			}
		}
	}
	return params
}
