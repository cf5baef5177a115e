package contextkeys

type contextKey string

// DBContextKey holds the *gorm.DB (pool or transaction) for the current request.
const DBContextKey = contextKey("db")

// SessionContextKey holds the *auth.Session of the current request.
const SessionContextKey = contextKey("session")
