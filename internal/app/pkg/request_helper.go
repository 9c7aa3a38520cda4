package pkg

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/servicehub/servicehub-core/internal/app/models"
)

// ActorLocalsKey is where the auth middleware stores the resolved username.
const ActorLocalsKey = "actor"

// ResolveClientIP prefers the first entry of a forwarded-for header and falls
// back to the direct connection address.
func ResolveClientIP(forwardedFor, remoteAddr string) string {
	if forwardedFor != "" {
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}
	return remoteAddr
}

// RequestInfoFromCtx captures the actor identity and request provenance for
// the audit trail. Unauthenticated interactive requests get the anonymous
// actor.
func RequestInfoFromCtx(c *fiber.Ctx) models.RequestInfo {
	actor := models.ActorAnonymous
	if username, ok := c.Locals(ActorLocalsKey).(string); ok && username != "" {
		actor = username
	}

	return models.RequestInfo{
		Actor:     actor,
		IPAddress: ResolveClientIP(c.Get(fiber.HeaderXForwardedFor), c.IP()),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}
}
