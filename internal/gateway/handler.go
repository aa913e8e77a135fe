// internal/gateway/handler.go
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/therandomindian/investment-agent-system/internal/actions"
	"github.com/therandomindian/investment-agent-system/internal/chart"
	"github.com/therandomindian/investment-agent-system/internal/common/config"
	stderrors "github.com/therandomindian/investment-agent-system/internal/common/errors"
	"github.com/therandomindian/investment-agent-system/internal/common/logger"
	"github.com/therandomindian/investment-agent-system/internal/common/metrics"
	"github.com/therandomindian/investment-agent-system/internal/common/observability"
	"github.com/therandomindian/investment-agent-system/internal/orchestrator"
)

const (
	msgMissingQuery  = "Missing 'query' in request body"
	msgInvalidJSON   = "Invalid JSON in request body"
	msgNotConfigured = "Server is not configured. Agent Alias ID is a placeholder."
)

// Handler is the single externally reachable surface. It is the only layer
// that converts errors into HTTP statuses; everything below it absorbs
// faults into text.
type Handler struct {
	strategy       orchestrator.Strategy
	adapter        *actions.Adapter
	orchCfg        config.OrchestratorConfig
	requestTimeout time.Duration
	obs            *observability.Observability
	logger         logger.Logger
}

func NewHandler(
	strategy orchestrator.Strategy,
	adapter *actions.Adapter,
	orchCfg config.OrchestratorConfig,
	requestTimeout time.Duration,
	obs *observability.Observability,
	log logger.Logger,
) *Handler {
	return &Handler{
		strategy:       strategy,
		adapter:        adapter,
		orchCfg:        orchCfg,
		requestTimeout: requestTimeout,
		obs:            obs,
		logger:         log.WithFields(map[string]interface{}{"component": "gateway"}),
	}
}

// HandleQuery processes POST /: parse, validate, invoke the orchestrator,
// map the outcome to a status code.
func (h *Handler) HandleQuery(c *gin.Context) {
	start := time.Now()

	raw, err := c.GetRawData()
	if err != nil {
		h.replyError(c, start, stderrors.NewClientInputError(msgInvalidJSON))
		return
	}

	var req QueryRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		h.replyError(c, start, stderrors.NewClientInputError(msgInvalidJSON))
		return
	}

	if req.Query == "" {
		h.replyError(c, start, stderrors.NewClientInputError(msgMissingQuery))
		return
	}

	// Deployment not finalized: refuse before touching the specialist runtime.
	if h.orchCfg.AliasIsPlaceholder() {
		h.replyError(c, start, stderrors.NewConfigurationError(msgNotConfigured))
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.requestTimeout)
	defer cancel()

	answer, err := h.strategy.Respond(ctx, sessionID, req.Query)
	if err == nil {
		// Answers carrying an embedded chart payload must satisfy the chart
		// contract before they are relayed.
		_, _, err = chart.Split(answer)
	}
	if err != nil {
		stdErr := stderrors.Normalize(err)
		h.logger.WithError(err).Error("query failed", map[string]interface{}{
			"sessionId": sessionID,
			"errorCode": string(stdErr.Code),
		})
		h.reply(c, start, stdErr.HTTPStatus(), ErrorResponse{
			Error: fmt.Sprintf("An internal error occurred: %s", stdErr.PublicMessage()),
		})
		return
	}

	h.reply(c, start, http.StatusOK, QueryResponse{Response: answer, SessionID: sessionID})
}

// HandleAction processes POST /actions: the function-call adapter endpoint.
// The adapter is fault-absorbing, so this always answers 200 with the
// wrapped envelope.
func (h *Handler) HandleAction(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		raw = nil
	}
	result := h.adapter.Handle(c.Request.Context(), raw)
	c.JSON(http.StatusOK, result)
}

// HandleHealth answers liveness probes.
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// replyError maps a taxonomy error straight onto the wire: its status and
// its caller-facing message.
func (h *Handler) replyError(c *gin.Context, start time.Time, stdErr *stderrors.StandardError) {
	h.reply(c, start, stdErr.HTTPStatus(), ErrorResponse{Error: stdErr.PublicMessage()})
}

func (h *Handler) reply(c *gin.Context, start time.Time, status int, body interface{}) {
	label := strconv.Itoa(status)
	metrics.GatewayRequests.WithLabelValues(label).Inc()
	if h.obs != nil {
		h.obs.RecordQueryProcessed(c.Request.Context(), label)
		h.obs.RecordQueryDuration(c.Request.Context(), time.Since(start), label)
	}
	c.JSON(status, body)
}
