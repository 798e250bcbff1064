package constants

const (
	// Session keys
	SessionCookieName  = "task_session"
	SessionKeyUserID   = "user_id"
	SessionKeyUserName = "user_name"
	SessionKeyRole     = "role"

	// Context keys
	ContextKeyIdentity = "identity"

	// Date layout used by request parameters and task dates
	DateLayout = "2006-01-02"
)
