package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/logger"
	"github.com/oggyb/muzz-dating/internal/rpc"
	"github.com/oggyb/muzz-dating/internal/service"
)

const procedureLogout = "auth.logout"

type procedure func(ctx context.Context, input []byte) (any, error)

// route is a procedure plus whether it is a mutation (POST) or query (GET).
type route struct {
	mutation bool
	call     procedure
}

// unary decodes the raw JSON input into Req and invokes fn.
func unary[Req, Resp any](fn func(context.Context, *Req) (*Resp, error)) procedure {
	return func(ctx context.Context, input []byte) (any, error) {
		in := new(Req)
		if err := (rpc.Codec{}).Unmarshal(input, in); err != nil {
			return nil, svcErr.InvalidArgument("invalid input")
		}
		return fn(ctx, in)
	}
}

func query(p procedure) route    { return route{call: p} }
func mutation(p procedure) route { return route{mutation: true, call: p} }

func procedures(s *service.Services) map[string]route {
	authSvc := s.Auth.Service()
	profileSvc := s.Profile.Service()
	discoverSvc := s.Discover.Service()
	matchesSvc := s.Matches.Service()
	messagesSvc := s.Messages.Service()
	systemSvc := s.System.Service()

	return map[string]route{
		"auth.me":                  query(unary(authSvc.Me)),
		procedureLogout:            mutation(unary(authSvc.Logout)),
		"profile.get":              query(unary(profileSvc.Get)),
		"profile.update":           mutation(unary(profileSvc.Update)),
		"discover.browse":          query(unary(discoverSvc.Browse)),
		"discover.like":            mutation(unary(discoverSvc.Like)),
		"matches.list":             query(unary(matchesSvc.List)),
		"matches.updateStatus":     mutation(unary(matchesSvc.UpdateStatus)),
		"messages.send":            mutation(unary(messagesSvc.Send)),
		"messages.getConversation": query(unary(messagesSvc.GetConversation)),
		"messages.unreadCount":     query(unary(messagesSvc.UnreadCount)),
		"system.health":            query(unary(systemSvc.Health)),
	}
}

// call dispatches /api/trpc/:procedure. Queries take their input from the
// "input" query parameter, mutations from the request body.
func (g *Gateway) call(c *fiber.Ctx) error {
	name := c.Params("procedure")
	r, ok := g.routes[name]
	if !ok {
		return writeError(c, svcErr.NotFound("no procedure named "+name))
	}

	var input []byte
	switch {
	case r.mutation && c.Method() == fiber.MethodPost:
		input = c.Body()
	case !r.mutation && c.Method() == fiber.MethodGet:
		input = []byte(c.Query("input"))
	default:
		return c.Status(fiber.StatusMethodNotAllowed).JSON(errorBody("METHOD_NOT_SUPPORTED", "wrong HTTP method for "+name))
	}

	resp, err := r.call(c.UserContext(), input)
	if err != nil {
		return writeError(c, err)
	}

	if name == procedureLogout {
		c.ClearCookie(g.appCtx.Config.Auth.CookieName)
	}
	return c.JSON(fiber.Map{"result": fiber.Map{"data": resp}})
}

var httpStatus = map[codes.Code]struct {
	status int
	name   string
}{
	codes.InvalidArgument:  {fiber.StatusBadRequest, "BAD_REQUEST"},
	codes.Unauthenticated:  {fiber.StatusUnauthorized, "UNAUTHORIZED"},
	codes.PermissionDenied: {fiber.StatusForbidden, "FORBIDDEN"},
	codes.NotFound:         {fiber.StatusNotFound, "NOT_FOUND"},
	codes.Unavailable:      {fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
	codes.DeadlineExceeded: {fiber.StatusGatewayTimeout, "TIMEOUT"},
	codes.Canceled:         {499, "CLIENT_CLOSED_REQUEST"},
}

// writeError renders a service error with the HTTP status matching its gRPC code.
func writeError(c *fiber.Ctx, err error) error {
	st, _ := status.FromError(svcErr.Map(err))

	mapped, ok := httpStatus[st.Code()]
	if !ok {
		mapped.status, mapped.name = fiber.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
	}

	msg := st.Message()
	if mapped.status == fiber.StatusInternalServerError {
		logger.Error("[HTTP] procedure failed", "path", c.Path(), "err", err)
		msg = "internal error"
	}
	return c.Status(mapped.status).JSON(errorBody(mapped.name, msg))
}

func errorBody(code, msg string) fiber.Map {
	return fiber.Map{"error": fiber.Map{"code": code, "message": msg}}
}
