package constant

type contextKey string

// UserIDKey is the request context key holding the authenticated user id (uint64).
const UserIDKey contextKey = "user_id"
