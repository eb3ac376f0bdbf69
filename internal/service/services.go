// Package service bundles the procedure services so transports can share them.
package service

import (
	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/server"
	"github.com/oggyb/muzz-dating/internal/service/discover"
	"github.com/oggyb/muzz-dating/internal/service/identity"
	"github.com/oggyb/muzz-dating/internal/service/matches"
	"github.com/oggyb/muzz-dating/internal/service/messages"
	"github.com/oggyb/muzz-dating/internal/service/profile"
	"github.com/oggyb/muzz-dating/internal/service/system"
)

// Services holds one registrar per gRPC service.
type Services struct {
	Auth     *identity.Registrar
	Profile  *profile.Registrar
	Discover *discover.Registrar
	Matches  *matches.Registrar
	Messages *messages.Registrar
	System   *system.Registrar
}

func New(appCtx *app.AppContext) *Services {
	return &Services{
		Auth:     identity.NewRegistrar(appCtx),
		Profile:  profile.NewRegistrar(appCtx),
		Discover: discover.NewRegistrar(appCtx),
		Matches:  matches.NewRegistrar(appCtx),
		Messages: messages.NewRegistrar(appCtx),
		System:   system.NewRegistrar(appCtx),
	}
}

// Registrars lists every service for server.NewGRPCServer.
func (s *Services) Registrars() []server.Registrar {
	return []server.Registrar{s.Auth, s.Profile, s.Discover, s.Matches, s.Messages, s.System}
}
