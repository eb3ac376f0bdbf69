package http

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/logger"
)

const headerRequestID = "X-Request-ID"

var errServiceToken = errors.New("invalid or missing service token")

// requestLogger tags each request with an id and logs it once handled.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(headerRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(headerRequestID, reqID)

		log := logger.With("request_id", reqID)
		c.SetUserContext(logger.IntoContext(c.UserContext(), log))

		err := c.Next()

		log.Debug("[HTTP] request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start),
		)
		return err
	}
}

// sessionMiddleware resolves an optional session from the Authorization
// header or the session cookie. Anonymous requests pass through.
func sessionMiddleware(appCtx *app.AppContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if appCtx.Auth == nil {
			return c.Next()
		}
		token := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			token = c.Cookies(appCtx.Config.Auth.CookieName)
		}
		c.SetUserContext(appCtx.Auth.ResolveOptional(c.UserContext(), token))
		return c.Next()
	}
}

// serviceAuth guards endpoints reserved to the identity provider callback.
// An empty expected token disables the endpoint.
func serviceAuth(expected string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("X-Service-Token")
		if expected == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			logger.Warn("[SERVICE-AUTH] rejected", "ip", c.IP(), "path", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(errorBody("UNAUTHORIZED", errServiceToken.Error()))
		}
		return c.Next()
	}
}
