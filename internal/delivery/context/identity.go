package context

import (
	"planner/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SetIdentity stores the resolved session identity in echo.Context.
func SetIdentity(c echo.Context, identity *service.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity extracts the resolved session identity from echo.Context.
// The second return is false when no identity was set, i.e. the request
// never passed the authentication middleware.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*service.Identity)

	return identity, ok && identity != nil
}
