// internal/actions/portfolio/handler.go
package portfolio

import (
	"context"

	"github.com/therandomindian/investment-agent-system/internal/common/logger"
)

const FunctionName = "get_portfolio_balance"

// apologyText is returned instead of an error when the balance API is
// unreachable; the specialist relays it to the user as-is.
const apologyText = "Sorry, I'm unable to fetch your portfolio balance at the moment. Please try again later."

// Handler exposes the balance fetch as an action-group function.
type Handler struct {
	service *Service
	logger  logger.Logger
}

func NewHandler(service *Service, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"function": FunctionName}),
	}
}

func (h *Handler) Name() string { return FunctionName }

// Required is empty: the account is implicit server-side.
func (h *Handler) Required() []string { return nil }

// Execute fetches the snapshot and formats the narrative. Upstream failures
// are absorbed into a user-facing apology rather than surfaced as errors.
func (h *Handler) Execute(ctx context.Context, _ map[string]string) (string, error) {
	snap, err := h.service.FetchBalance(ctx)
	if err != nil {
		h.logger.WithError(err).Error("balance fetch failed", nil)
		return apologyText, nil
	}
	return BuildNarrative(snap), nil
}
