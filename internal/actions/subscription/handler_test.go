// internal/actions/subscription/handler_test.go
package subscription

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therandomindian/investment-agent-system/internal/common/logger"
)

// ==========================
// CheckHandler Tests
// ==========================

func TestCheckHandler_Execute_ReturnsRecordJSON(t *testing.T) {
	server := newPermissionsServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"permitted_agents":["detailed-investment-agent"]}}`))
	})
	handler := NewCheckHandler(newSubscriptionService(server.URL), logger.NewNoOpLogger())

	body, err := handler.Execute(context.Background(), map[string]string{"user_id": "u1"})

	require.NoError(t, err)
	var record Record
	require.NoError(t, json.Unmarshal([]byte(body), &record))
	assert.Equal(t, "u1", record.UserID)
	assert.True(t, record.HasSubscription)
	assert.Equal(t, []string{"detailed-investment-agent"}, record.PermittedAgents)
}

func TestCheckHandler_Execute_UpstreamFailureBecomesText(t *testing.T) {
	server := newPermissionsServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	handler := NewCheckHandler(newSubscriptionService(server.URL), logger.NewNoOpLogger())

	body, err := handler.Execute(context.Background(), map[string]string{"user_id": "u1"})

	require.NoError(t, err)
	assert.Contains(t, body, "Error: ")
	assert.Contains(t, body, "API request failed with status: 500")
}

func TestCheckHandler_Metadata(t *testing.T) {
	handler := NewCheckHandler(newSubscriptionService("http://example.invalid"), logger.NewNoOpLogger())

	assert.Equal(t, "check_subscription", handler.Name())
	assert.Equal(t, []string{"user_id"}, handler.Required())
}

// ==========================
// SubscribeHandler Tests
// ==========================

func TestSubscribeHandler_Execute_Confirmation(t *testing.T) {
	tests := []struct {
		name      string
		agentName string
		expected  string
	}{
		{
			name:      "explicit agent name",
			agentName: "custom-agent",
			expected:  "Great! You have successfully subscribed to the custom-agent service. You now have access to detailed investment advice and personalized recommendations.",
		},
		{
			name:      "defaulted agent name",
			agentName: "",
			expected:  "Great! You have successfully subscribed to the detailed-investment-agent service. You now have access to detailed investment advice and personalized recommendations.",
		},
	}

	server := newPermissionsServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	handler := NewSubscribeHandler(newSubscriptionService(server.URL), logger.NewNoOpLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := map[string]string{"user_id": "u1"}
			if tt.agentName != "" {
				params["agent_name"] = tt.agentName
			}

			body, err := handler.Execute(context.Background(), params)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, body)
		})
	}
}

func TestSubscribeHandler_Execute_UpstreamFailureBecomesText(t *testing.T) {
	server := newPermissionsServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	handler := NewSubscribeHandler(newSubscriptionService(server.URL), logger.NewNoOpLogger())

	body, err := handler.Execute(context.Background(), map[string]string{"user_id": "u1"})

	require.NoError(t, err)
	assert.Contains(t, body, "There was an issue with your subscription:")
	assert.Contains(t, body, "API request failed with status: 502")
}

func TestSubscribeHandler_Metadata(t *testing.T) {
	handler := NewSubscribeHandler(newSubscriptionService("http://example.invalid"), logger.NewNoOpLogger())

	assert.Equal(t, "subscribe_to_service", handler.Name())
	assert.Equal(t, []string{"user_id"}, handler.Required())
}
