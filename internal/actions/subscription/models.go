// internal/actions/subscription/models.go
package subscription

// Record is the per-request view of a user's permissions. Derived from the
// external source of truth on every call; never cached.
type Record struct {
	UserID          string   `json:"user_id"`
	HasSubscription bool     `json:"has_subscription"`
	PermittedAgents []string `json:"permitted_agents"`
}

// GrantResult reports the outcome of a subscribe call.
type GrantResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
