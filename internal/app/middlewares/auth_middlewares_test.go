package middlewares

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/servicehub/servicehub-core/internal/app/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActorEchoApp(m *AuthMiddleware) *fiber.App {
	app := fiber.New()
	app.Use(m.ResolveActor)
	app.Get("/whoami", func(c *fiber.Ctx) error {
		if actor, ok := c.Locals(pkg.ActorLocalsKey).(string); ok {
			return c.SendString(actor)
		}
		return c.SendString("anonymous")
	})
	app.Get("/protected", m.RequireAuth, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func readBody(t *testing.T, app *fiber.App, token string, path string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestResolveActor_ValidToken(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	app := newActorEchoApp(&AuthMiddleware{secret: secret})

	token := signToken(t, secret, jwt.MapClaims{"username": "maria"})
	status, body := readBody(t, app, token, "/whoami")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "maria", body)
}

func TestResolveActor_NoTokenStaysAnonymous(t *testing.T) {
	t.Parallel()

	app := newActorEchoApp(&AuthMiddleware{secret: []byte("test-secret")})

	status, body := readBody(t, app, "", "/whoami")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "anonymous", body)
}

func TestResolveActor_WrongSecretStaysAnonymous(t *testing.T) {
	t.Parallel()

	app := newActorEchoApp(&AuthMiddleware{secret: []byte("right-secret")})

	token := signToken(t, []byte("wrong-secret"), jwt.MapClaims{"username": "maria"})
	status, body := readBody(t, app, token, "/whoami")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "anonymous", body)
}

func TestRequireAuth_RejectsAnonymous(t *testing.T) {
	t.Parallel()

	app := newActorEchoApp(&AuthMiddleware{secret: []byte("test-secret")})

	status, _ := readBody(t, app, "", "/protected")

	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRequireAuth_AllowsResolvedActor(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	app := newActorEchoApp(&AuthMiddleware{secret: secret})

	token := signToken(t, secret, jwt.MapClaims{"username": "maria"})
	status, body := readBody(t, app, token, "/protected")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body)
}
