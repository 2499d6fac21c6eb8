package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"

	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	userIDKey    ctxKey = "user_id"
)
