package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldBillID     = "bill_id"
	FieldScope      = "scope"
)

// Components defines standard component names
const (
	ComponentHTTP    = "http"
	ComponentPlanner = "planner"
)
