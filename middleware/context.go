package middleware

// Keys under which middleware stores request state in the Gin context.
const (
	ContextLogger    = "logger"
	ContextRequestID = "requestId"
	ContextUserID    = "userID"
	ContextRole      = "role"
)
