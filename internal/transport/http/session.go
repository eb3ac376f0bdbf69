package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/logger"
)

// SessionRequest is posted by the identity provider callback once a user
// has authenticated externally.
type SessionRequest struct {
	OpenID      string `json:"openId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	LoginMethod string `json:"loginMethod"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// establishSession upserts the identity, issues a session token and sets the
// session cookie.
func (g *Gateway) establishSession(c *fiber.Ctx) error {
	var req SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("BAD_REQUEST", "invalid JSON"))
	}

	token, err := g.appCtx.Auth.Establish(c.UserContext(), auth.Identity{
		OpenID:      req.OpenID,
		Name:        req.Name,
		Email:       req.Email,
		LoginMethod: req.LoginMethod,
	})
	if err != nil {
		return writeError(c, err)
	}

	cfg := g.appCtx.Config.Auth
	expiresAt := time.Now().Add(cfg.SessionTTL)
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	logger.Info("[Auth] session established", "open_id", req.OpenID)
	return c.Status(fiber.StatusCreated).JSON(SessionResponse{Token: token, ExpiresAt: expiresAt})
}
