// internal/orchestrator/strategy.go
package orchestrator

import (
	"context"
	"fmt"

	"github.com/therandomindian/investment-agent-system/internal/agents"
	"github.com/therandomindian/investment-agent-system/internal/common/config"
	"github.com/therandomindian/investment-agent-system/internal/common/logger"
)

// Strategy decides which specialist answers a query. The variant is fixed at
// deployment time, never per request.
type Strategy interface {
	Respond(ctx context.Context, sessionID, query string) (string, error)
}

// StaticSingleTarget addresses one fixed specialist with no branching.
type StaticSingleTarget struct {
	ref     agents.Ref
	invoker agents.Invoker
	logger  logger.Logger
}

func NewStaticSingleTarget(ref agents.Ref, invoker agents.Invoker, log logger.Logger) *StaticSingleTarget {
	return &StaticSingleTarget{
		ref:     ref,
		invoker: invoker,
		logger:  log.WithFields(map[string]interface{}{"strategy": "static"}),
	}
}

func (s *StaticSingleTarget) Respond(ctx context.Context, sessionID, query string) (string, error) {
	return s.invoker.Invoke(ctx, s.ref, sessionID, query)
}

// DelegatedMultiTarget addresses a routing specialist that picks one of N
// downstream specialists itself. The decision logic lives inside the external
// model; its delegation calls arrive back through the action adapter, and the
// downstream answer is returned verbatim.
type DelegatedMultiTarget struct {
	ref     agents.Ref
	invoker agents.Invoker
	logger  logger.Logger
}

func NewDelegatedMultiTarget(ref agents.Ref, invoker agents.Invoker, log logger.Logger) *DelegatedMultiTarget {
	return &DelegatedMultiTarget{
		ref:     ref,
		invoker: invoker,
		logger:  log.WithFields(map[string]interface{}{"strategy": "delegated"}),
	}
}

func (d *DelegatedMultiTarget) Respond(ctx context.Context, sessionID, query string) (string, error) {
	d.logger.Debug("routing query through orchestrator agent", map[string]interface{}{
		"sessionId": sessionID,
	})
	return d.invoker.Invoke(ctx, d.ref, sessionID, query)
}

// FromConfig builds the deployment's strategy.
func FromConfig(cfg config.OrchestratorConfig, invoker agents.Invoker, log logger.Logger) (Strategy, error) {
	ref := agents.Ref{AgentID: cfg.AgentID, AliasID: cfg.AgentAliasID}
	switch cfg.Strategy {
	case "static":
		return NewStaticSingleTarget(ref, invoker, log), nil
	case "delegated":
		return NewDelegatedMultiTarget(ref, invoker, log), nil
	default:
		return nil, fmt.Errorf("unknown orchestrator strategy: %q", cfg.Strategy)
	}
}
