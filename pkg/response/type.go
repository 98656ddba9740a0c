package response

// Resp is the JSON envelope of every API response. TraceID echoes the
// request's trace id so a client report can be matched to log lines.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
	TraceID   string `json:"trace_id,omitempty"`
}
