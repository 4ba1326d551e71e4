package session

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// Header carries the session id in both directions.
const Header = "X-Session-ID"

const (
	localsKey = "sessionID"
	maxLen    = 128
)

// New returns middleware that attaches a session id to every request. A
// missing or oversized X-Session-ID header gets a fresh random id. The id is
// always echoed back so clients can keep it.
//
// The id outlives the request as a repository key, so it is copied out of
// the pooled request buffer.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := utils.CopyString(strings.TrimSpace(c.Get(Header)))
		if id == "" || len(id) > maxLen {
			id = uuid.NewString()
		}
		c.Locals(localsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}

// FromCtx returns the session id set by the middleware, or "" when the
// middleware did not run.
func FromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(localsKey).(string)
	return id
}
