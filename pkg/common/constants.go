package common

const (
	RequestIDHeader = "X-Request-Id"
	HistoryIDHeader = "X-Frontend-Scanner-History-Id"

	APIPrefix    = "frontEndScanner"
	CallbackPath = "/" + APIPrefix + "/callback"
	ActionPath   = "/JSON/" + APIPrefix + "/action/:name"

	// ContentSecurityPolicy is sent with every API response.
	ContentSecurityPolicy = "default-src 'none'; script-src 'self'; connect-src https://zap wss://zap; " +
		"frame-src 'self'; img-src 'self' data:; font-src 'self' data:; style-src 'self' 'unsafe-inline' ;"
)
