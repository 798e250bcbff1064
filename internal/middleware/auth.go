package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/constants"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/services"
	"github.com/yukikurage/task-tracker/internal/session"
)

// RequireAuth checks if the user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := session.New(sessions.Default(c)).Identity()
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store identity in context for easy access in handlers
		c.Set(constants.ContextKeyIdentity, identity)
		c.Next()
	}
}

// RequireOperation rejects the request before the handler runs when the
// session role may not perform op. Must be chained after RequireAuth.
func RequireOperation(op services.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !services.Allowed(identity.Role, op) {
			apierrors.Forbidden(c, "Your role cannot perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetIdentity retrieves the session identity from context
func GetIdentity(c *gin.Context) (session.Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return session.Identity{}, false
	}

	identity, ok := value.(session.Identity)
	return identity, ok
}

// GetActor retrieves the session identity as a service actor
func GetActor(c *gin.Context) (services.Actor, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return services.Actor{}, false
	}

	return services.Actor{
		UserID:   identity.UserID,
		UserName: identity.UserName,
		Role:     identity.Role,
	}, true
}
