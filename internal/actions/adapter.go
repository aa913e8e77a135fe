// internal/actions/adapter.go
package actions

import (
	"context"
	"encoding/json"
	"fmt"

	stderrors "github.com/therandomindian/investment-agent-system/internal/common/errors"
	"github.com/therandomindian/investment-agent-system/internal/common/logger"
	"github.com/therandomindian/investment-agent-system/internal/common/metrics"
)

// Handler runs one auxiliary function on behalf of a specialist. Execute
// returns the text the specialist should incorporate; returning an error is
// allowed but the adapter converts it to diagnostic text at its boundary.
type Handler interface {
	Name() string
	Required() []string
	Execute(ctx context.Context, params map[string]string) (string, error)
}

// Adapter dispatches normalized function-call events to registered handlers.
// It is fault-absorbing: every failure mode, including panics, is converted
// into a Result whose body carries an error string. Handle never fails.
type Adapter struct {
	handlers     map[string]Handler
	directTarget string
	logger       logger.Logger
}

func NewAdapter(log logger.Logger, handlers ...Handler) *Adapter {
	byName := make(map[string]Handler, len(handlers))
	for _, h := range handlers {
		byName[h.Name()] = h
	}
	return &Adapter{
		handlers: byName,
		logger:   log.WithFields(map[string]interface{}{"component": "action-adapter"}),
	}
}

// SetDirectInvocationTarget names the function that absorbs bare inputText
// events (no function-call envelope). Called once during wiring.
func (a *Adapter) SetDirectInvocationTarget(functionName string) {
	a.directTarget = functionName
}

// Handle normalizes the raw event, dispatches it, and wraps the outcome.
func (a *Adapter) Handle(ctx context.Context, raw json.RawMessage) (result Result) {
	event := NormalizeEvent(raw)

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("panic in action handler", map[string]interface{}{
				"function": event.Function,
				"panic":    fmt.Sprint(r),
			})
			metrics.ActionCalls.WithLabelValues(event.Function, "panic").Inc()
			result = NewResult(event.ActionGroup, event.Function,
				fmt.Sprintf("Error handling function call: %v", r))
		}
	}()

	if event.Function == "" && event.InputText != "" && a.directTarget != "" {
		event.Function = a.directTarget
		event.Parameters["query"] = event.InputText
	}

	handler, registered := a.handlers[event.Function]
	if !registered {
		a.logger.Warn("unknown function requested", map[string]interface{}{
			"function":    event.Function,
			"actionGroup": event.ActionGroup,
		})
		metrics.ActionCalls.WithLabelValues(event.Function, "unknown_function").Inc()
		return NewResult(event.ActionGroup, event.Function,
			"Error: "+stderrors.NewUnknownFunctionError(event.Function).Message)
	}

	for _, param := range handler.Required() {
		if event.Parameters[param] == "" {
			metrics.ActionCalls.WithLabelValues(event.Function, "missing_parameter").Inc()
			return NewResult(event.ActionGroup, event.Function,
				"Error: "+stderrors.NewMissingParameterError(param).Message)
		}
	}

	body, err := handler.Execute(ctx, event.Parameters)
	if err != nil {
		a.logger.WithError(err).Error("action handler failed", map[string]interface{}{
			"function": event.Function,
		})
		metrics.ActionCalls.WithLabelValues(event.Function, "error").Inc()
		return NewResult(event.ActionGroup, event.Function,
			fmt.Sprintf("Error calling %s: %s", event.Function, err.Error()))
	}

	metrics.ActionCalls.WithLabelValues(event.Function, "success").Inc()
	return NewResult(event.ActionGroup, event.Function, body)
}

// Functions lists the registered function names, for startup logging.
func (a *Adapter) Functions() []string {
	names := make([]string, 0, len(a.handlers))
	for name := range a.handlers {
		names = append(names, name)
	}
	return names
}
