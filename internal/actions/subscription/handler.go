// internal/actions/subscription/handler.go
package subscription

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/therandomindian/investment-agent-system/internal/common/logger"
)

const (
	CheckFunctionName     = "check_subscription"
	SubscribeFunctionName = "subscribe_to_service"
)

// user_id is required on both functions: identity must be explicit and the
// gate fails closed without it.

// CheckHandler exposes the subscription check as an action-group function.
type CheckHandler struct {
	service *Service
	logger  logger.Logger
}

func NewCheckHandler(service *Service, log logger.Logger) *CheckHandler {
	return &CheckHandler{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"function": CheckFunctionName}),
	}
}

func (h *CheckHandler) Name() string { return CheckFunctionName }

func (h *CheckHandler) Required() []string { return []string{"user_id"} }

// Execute returns the permission record as JSON text for the specialist to
// reason over. Upstream failures become structured error text, not errors.
func (h *CheckHandler) Execute(ctx context.Context, params map[string]string) (string, error) {
	record, err := h.service.Check(ctx, params["user_id"])
	if err != nil {
		h.logger.WithError(err).Error("subscription check failed", map[string]interface{}{
			"userId": params["user_id"],
		})
		return fmt.Sprintf("Error: %s", err.Error()), nil
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Sprintf("Error: %s", err.Error()), nil
	}
	return string(encoded), nil
}

// SubscribeHandler exposes the grant operation as an action-group function.
type SubscribeHandler struct {
	service *Service
	logger  logger.Logger
}

func NewSubscribeHandler(service *Service, log logger.Logger) *SubscribeHandler {
	return &SubscribeHandler{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"function": SubscribeFunctionName}),
	}
}

func (h *SubscribeHandler) Name() string { return SubscribeFunctionName }

func (h *SubscribeHandler) Required() []string { return []string{"user_id"} }

// Execute grants access and answers with a user-facing confirmation naming
// the granted capability, never raw JSON.
func (h *SubscribeHandler) Execute(ctx context.Context, params map[string]string) (string, error) {
	agentName := params["agent_name"]
	result, err := h.service.Subscribe(ctx, params["user_id"], agentName)
	if err != nil {
		h.logger.WithError(err).Error("subscribe failed", map[string]interface{}{
			"userId": params["user_id"],
		})
		return fmt.Sprintf("There was an issue with your subscription: %s", err.Error()), nil
	}
	if !result.Success {
		return fmt.Sprintf("There was an issue with your subscription: %s", result.Message), nil
	}

	if agentName == "" {
		agentName = h.service.config.DefaultAgentName
	}
	return fmt.Sprintf(
		"Great! You have successfully subscribed to the %s service. You now have access to detailed investment advice and personalized recommendations.",
		agentName), nil
}
