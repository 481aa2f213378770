package middleware

import (
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"

	"github.com/gin-gonic/gin"
)

// actorKey is the key under which the authenticated actor is stored in the
// request context.
const actorKey = contextKey("actor")

// GetActorFromContext retrieves the authenticated office holder placed in the
// request context by AuthMiddleware. It returns the actor and a boolean
// indicating if one was found.
func GetActorFromContext(c *gin.Context) (domain.Reviewer, bool) {
	actor, ok := c.Request.Context().Value(actorKey).(domain.Reviewer)
	return actor, ok
}
