// internal/actions/portfolio/service.go
package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/therandomindian/investment-agent-system/internal/common/httpclient"
	"github.com/therandomindian/investment-agent-system/internal/common/logger"
)

type Config struct {
	BalanceURL string
	Timeout    time.Duration
}

// Service fetches the portfolio snapshot from the external balance API. The
// account is implicit server-side; the GET carries no parameters.
type Service struct {
	config *Config
	client *httpclient.Client
	logger logger.Logger
}

func NewService(config *Config, client *httpclient.Client, log logger.Logger) *Service {
	return &Service{
		config: config,
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "portfolio-service"}),
	}
}

// FetchBalance performs one GET against the balance endpoint. No caching:
// every request sees fresh upstream state.
func (s *Service) FetchBalance(ctx context.Context) (*Snapshot, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	resp, err := s.client.Get(ctx, s.config.BalanceURL)
	if err != nil {
		return nil, fmt.Errorf("portfolio API call failed: %w", err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("portfolio API request failed with status: %d", resp.StatusCode)
	}

	var body balanceResponse
	if err := resp.DecodeJSON(&body); err != nil {
		return nil, fmt.Errorf("portfolio API returned invalid JSON: %w", err)
	}
	return &body.Portfolio, nil
}
