// Package http exposes the procedure services over HTTP with fiber: a
// tRPC-style endpoint per procedure plus session establishment.
package http

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/logger"
	"github.com/oggyb/muzz-dating/internal/service"
)

// Gateway is the HTTP front door for browser clients.
type Gateway struct {
	app    *fiber.App
	appCtx *app.AppContext
	svcs   *service.Services
	routes map[string]route
	addr   string
}

// ErrWildcardOrigins is returned when CORS origins are empty or contain "*".
// Session cookies need credentialed CORS, which forbids a wildcard.
var ErrWildcardOrigins = errors.New("ALLOWED_ORIGINS must list explicit origins")

// NewGateway builds the fiber app and its routes.
func NewGateway(appCtx *app.AppContext, svcs *service.Services) (*Gateway, error) {
	cfg := appCtx.Config

	origins, err := allowedOrigins(cfg.HTTP.AllowedOrigins)
	if err != nil {
		return nil, err
	}

	g := &Gateway{
		appCtx: appCtx,
		svcs:   svcs,
		routes: procedures(svcs),
		addr:   fmt.Sprintf("%s:%s", cfg.HTTP.Host, cfg.HTTP.Port),
	}

	g.app = fiber.New(fiber.Config{
		AppName:               "muzz-dating",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	g.app.Use(recover.New())
	g.app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Service-Token",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
	g.app.Use(requestLogger())

	g.app.Get("/health", g.health)
	g.app.Post("/api/session", serviceAuth(cfg.Auth.ServiceToken), g.establishSession)

	api := g.app.Group("/api/trpc", sessionMiddleware(appCtx))
	api.Get("/:procedure", g.call)
	api.Post("/:procedure", g.call)

	return g, nil
}

func allowedOrigins(raw string) (string, error) {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if strings.Contains(o, "*") {
			return "", ErrWildcardOrigins
		}
		out = append(out, o)
	}
	if len(out) == 0 {
		return "", ErrWildcardOrigins
	}
	return strings.Join(out, ","), nil
}

// App exposes the fiber app, mainly for app.Test.
func (g *Gateway) App() *fiber.App { return g.app }

// Start serves until Shutdown.
func (g *Gateway) Start() error {
	logger.Info("HTTP gateway listening", "addr", g.addr)
	return g.app.Listen(g.addr)
}

func (g *Gateway) Shutdown(ctx context.Context) error {
	return g.app.ShutdownWithContext(ctx)
}

func (g *Gateway) health(c *fiber.Ctx) error {
	resp, err := g.svcs.System.Service().Health(c.UserContext(), &emptypb.Empty{})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "something went wrong"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		msg = e.Message
	}
	logger.Error("[HTTP] unhandled error", "method", c.Method(), "path", c.Path(), "code", code, "err", err)
	return c.Status(code).JSON(fiber.Map{"error": fiber.Map{"message": msg}})
}
