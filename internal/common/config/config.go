// internal/common/config/config.go
package config

import (
	"fmt"
	"strings"
)

// PlaceholderAliasID is the value the deployment tooling leaves in place until
// an agent alias has actually been prepared. Requests must not reach the
// specialist runtime while it is still set.
const PlaceholderAliasID = "PLACEHOLDER"

// Config is the main application configuration struct.
type Config struct {
	App          AppConfig          `mapstructure:"app"`
	Server       ServerConfig       `mapstructure:"server"`
	AWS          AWSConfig          `mapstructure:"aws"`
	Orchestrator OrchestratorConfig `mapstructure:"orchestrator"`
	Specialists  SpecialistsConfig  `mapstructure:"specialists"`
	APIs         APIsConfig         `mapstructure:"apis"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	RequestTimeout int `mapstructure:"request_timeout"` // seconds, whole-request deadline
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
}

// OrchestratorConfig selects the routing strategy at deployment time.
// Strategy "static" addresses the orchestrator agent as the only target;
// "delegated" lets the orchestrator agent pick a downstream specialist
// through the action registry.
type OrchestratorConfig struct {
	Strategy     string `mapstructure:"strategy"`
	AgentID      string `mapstructure:"agent_id"`
	AgentAliasID string `mapstructure:"agent_alias_id"`
}

// AliasIsPlaceholder reports whether the deployment never finished preparing
// the orchestrator alias.
func (o OrchestratorConfig) AliasIsPlaceholder() bool {
	return strings.Contains(o.AgentAliasID, PlaceholderAliasID)
}

// SpecialistConfig addresses one downstream specialist agent.
type SpecialistConfig struct {
	AgentID      string `mapstructure:"agent_id"`
	AgentAliasID string `mapstructure:"agent_alias_id"`
}

type SpecialistsConfig struct {
	GeneralAdvice       SpecialistConfig `mapstructure:"general_advice"`
	PersonalizedInfo    SpecialistConfig `mapstructure:"personalized_info"`
	DefaultSubscription string           `mapstructure:"default_subscription_agent"`
}

// APIsConfig holds settings for external API integrations.
type APIsConfig struct {
	Portfolio struct {
		BalanceURL string `mapstructure:"balance_url"`
		Timeout    int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"portfolio"`

	Permissions struct {
		BaseURL string `mapstructure:"base_url"`
		Timeout int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"permissions"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks the parts of the configuration the service cannot run
// without. The placeholder alias is deliberately NOT rejected here: the
// gateway reports it per-request so a half-deployed stack still answers
// health checks.
func (c *Config) Validate() error {
	switch c.Orchestrator.Strategy {
	case "static", "delegated":
	default:
		return fmt.Errorf("orchestrator.strategy must be 'static' or 'delegated', got %q", c.Orchestrator.Strategy)
	}
	if c.Orchestrator.AgentID == "" {
		return fmt.Errorf("orchestrator.agent_id is required")
	}
	if c.APIs.Portfolio.BalanceURL == "" {
		return fmt.Errorf("apis.portfolio.balance_url is required")
	}
	if c.APIs.Permissions.BaseURL == "" {
		return fmt.Errorf("apis.permissions.base_url is required")
	}
	return nil
}
