// internal/actions/subscription/service.go
package subscription

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/therandomindian/investment-agent-system/internal/common/httpclient"
	"github.com/therandomindian/investment-agent-system/internal/common/logger"
)

type Config struct {
	BaseURL string
	// Timeout bounds each permissions call explicitly, independent of the
	// enclosing request deadline.
	Timeout time.Duration
	// DefaultAgentName is the grant target used when the caller names none.
	DefaultAgentName string
}

// Service talks to the external permissions API.
type Service struct {
	config *Config
	client *httpclient.Client
	logger logger.Logger
}

func NewService(config *Config, client *httpclient.Client, log logger.Logger) *Service {
	return &Service{
		config: config,
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "subscription-service"}),
	}
}

func (s *Service) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// Check fetches the user's permission record. The upstream may answer with
// either an object carrying data.permitted_agents or a bare list of agent
// names; both are valid. hasSubscription is true iff the collection is
// non-empty.
func (s *Service) Check(ctx context.Context, userID string) (*Record, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	url := fmt.Sprintf("%s/permissions/%s", s.config.BaseURL, userID)
	resp, err := s.client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscription status: %w", err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("API request failed with status: %d", resp.StatusCode)
	}

	permitted, err := parsePermittedAgents(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON response from API: %w", err)
	}

	return &Record{
		UserID:          userID,
		HasSubscription: len(permitted) > 0,
		PermittedAgents: permitted,
	}, nil
}

// Subscribe grants the user access to the named agent. Success is determined
// solely by HTTP 200.
func (s *Service) Subscribe(ctx context.Context, userID, agentName string) (*GrantResult, error) {
	if agentName == "" {
		agentName = s.config.DefaultAgentName
	}

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	url := fmt.Sprintf("%s/permissions/%s/agents", s.config.BaseURL, userID)
	payload := map[string]string{"agent_name": agentName}

	s.logger.Info("subscribing user to agent", map[string]interface{}{
		"userId":    userID,
		"agentName": agentName,
	})

	resp, err := s.client.PostJSON(ctx, url, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to service: %w", err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("API request failed with status: %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("invalid JSON response from API: %w", err)
	}

	return &GrantResult{
		Success: true,
		Message: fmt.Sprintf("Successfully subscribed %s to %s", userID, agentName),
	}, nil
}

// parsePermittedAgents extracts the permitted-agents collection from either
// accepted body shape.
func parsePermittedAgents(body []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var envelope struct {
		Data struct {
			PermittedAgents []string `json:"permitted_agents"`
		} `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.PermittedAgents, nil
}
