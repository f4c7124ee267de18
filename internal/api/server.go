package api

import (
	"context"

	"github.com/vytor/algogame/internal/services"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	ProfileService services.ProfileService
	GameService    services.GameService
	ScoreService   services.ScoreService
	DB             Pinger
	CookieSecure   bool
}
