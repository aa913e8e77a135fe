// internal/agents/models.go
package agents

// Ref addresses exactly one invocation target: a deployed agent plus the
// alias/version to call. Immutable per deployment.
type Ref struct {
	AgentID string `json:"agentId"`
	AliasID string `json:"agentAliasId"`
}
