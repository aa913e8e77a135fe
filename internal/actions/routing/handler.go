// internal/actions/routing/handler.go
package routing

import (
	"context"

	"github.com/google/uuid"

	"github.com/therandomindian/investment-agent-system/internal/agents"
	"github.com/therandomindian/investment-agent-system/internal/common/logger"
)

const (
	GeneralAdviceFunctionName    = "invoke_general_advice_agent"
	PersonalizedInfoFunctionName = "invoke_personalized_information_agent"
)

// Handler exposes one downstream specialist as a callable function with a
// single required `query` parameter. The downstream answer is returned
// exactly as received, with no re-formatting; the routing specialist decides
// when to call it.
type Handler struct {
	name    string
	ref     agents.Ref
	invoker agents.Invoker
	logger  logger.Logger
}

func NewHandler(name string, ref agents.Ref, invoker agents.Invoker, log logger.Logger) *Handler {
	return &Handler{
		name:    name,
		ref:     ref,
		invoker: invoker,
		logger:  log.WithFields(map[string]interface{}{"function": name}),
	}
}

func (h *Handler) Name() string { return h.name }

func (h *Handler) Required() []string { return []string{"query"} }

// Execute delegates the query under a fresh session: each delegation is its
// own conversation with the downstream specialist.
func (h *Handler) Execute(ctx context.Context, params map[string]string) (string, error) {
	sessionID := uuid.NewString()
	h.logger.Debug("delegating query to specialist", map[string]interface{}{
		"agentId":   h.ref.AgentID,
		"sessionId": sessionID,
	})
	return h.invoker.Invoke(ctx, h.ref, sessionID, params["query"])
}
