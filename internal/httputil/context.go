package httputil

type ContextKey string

// ContextURL is the key of the API base URL in the gin context.
const ContextURL ContextKey = "baseURL"
