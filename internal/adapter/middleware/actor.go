package middleware

import (
	"net/http"
	"strings"

	"tender-crm-backend/internal/domain/actor"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID   = "Ax-User-Id"
	HeaderUserName = "Ax-User-Name"
)

const actorKey = "actor"

// RequireActor builds the calling actor from the Ax-User-* headers and stores it on the
// echo context. Mutating requests without a valid Ax-User-Id are rejected; reads pass
// through and get an actor only when the header is present.
func RequireActor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			a := actor.Actor{
				ID:   strings.TrimSpace(req.Header.Get(HeaderUserID)),
				Name: strings.TrimSpace(req.Header.Get(HeaderUserName)),
			}
			if a.ID == "" {
				if mutating(req.Method) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + HeaderUserID})
				}
				return next(c)
			}
			if !validUserID(a.ID) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid " + HeaderUserID})
			}
			if a.Name == "" {
				a.Name = a.ID
			}
			c.Set(actorKey, a)
			return next(c)
		}
	}
}

// ActorFrom returns the actor stored by RequireActor.
func ActorFrom(c echo.Context) (actor.Actor, bool) {
	a, ok := c.Get(actorKey).(actor.Actor)
	return a, ok && a.Valid()
}

// WithActor stores a on c. Handlers under test use it instead of the middleware.
func WithActor(c echo.Context, a actor.Actor) { c.Set(actorKey, a) }
