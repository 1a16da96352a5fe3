package constants

const (
	// ContextKeyUser holds the authenticated *models.User in the gin context.
	ContextKeyUser = "user"
	// ContextKeyRequestID holds the per-request id.
	ContextKeyRequestID = "request_id"

	// SessionCookieName is the cookie used by the browser session store.
	SessionCookieName = "gorev_session"
	// SessionKeyUsername is the session value holding the logged-in username.
	SessionKeyUsername = "username"

	MinPasswordLength = 1
	MaxUsernameLength = 50

	TokenTypeBearer = "bearer"
)
