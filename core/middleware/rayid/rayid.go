// Package rayid provides a middleware that tags every request with a
// unique identifier, exposed both in the response headers and in the
// request locals for log correlation.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request identifier.
const HeaderName = "X-Ray-ID"

// New creates the ray ID middleware. An incoming X-Ray-ID header is
// honored so identifiers survive proxies; otherwise a new one is minted.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
