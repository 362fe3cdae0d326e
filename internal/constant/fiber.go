package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-MHS-Request-ID"
)
