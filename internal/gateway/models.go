// internal/gateway/models.go
package gateway

// QueryRequest is the inbound body of POST /.
type QueryRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id"`
}

// QueryResponse is the 200 body: the composed answer plus the session
// identifier (echoed, or freshly generated when the caller supplied none).
type QueryResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// ErrorResponse is the body of every non-200 gateway reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
