package handlers

//go:generate mockgen -destination=mock_token_verifier_test.go -package=handlers github.com/sbilibin2017/snake-arena/internal/middlewares TokenVerifier

import (
	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/middlewares"
	"github.com/sbilibin2017/snake-arena/internal/protocol"
)

// Command names of the line protocol.
const (
	CommandSignup            = "SIGNUP"
	CommandLogin             = "LOGIN"
	CommandSubmitScore       = "SUBMIT_SCORE"
	CommandGlobalLeaderboard = "GLOBAL_LEADERBOARD"
	CommandLocalLeaderboard  = "LOCAL_LEADERBOARD"
	CommandStats             = "STATS"
	CommandUpdateProfile     = "UPDATE_PROFILE"
	CommandGetProfile        = "GET_PROFILE"
)

// AuthService is the account side of the protocol.
type AuthService interface {
	Registerer
	Loginer
}

// ScoreService is the score side of the protocol.
type ScoreService interface {
	ScoreSubmitter
	GlobalLeaderboarder
	LocalLeaderboarder
	StatsGetter
}

// ProfileService is the profile side of the protocol.
type ProfileService interface {
	ProfileUpdater
	ProfileGetter
}

// NewRouter registers every command. Commands taking a token are wrapped in AuthMiddleware.
func NewRouter(auth AuthService, scores ScoreService, profiles ProfileService, tokens middlewares.TokenVerifier) *protocol.Router {
	r := protocol.NewRouter()
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authenticated := middlewares.AuthMiddleware(tokens)

	r.Handle(CommandSignup, NewSignupHandler(auth))
	r.Handle(CommandLogin, NewLoginHandler(auth))
	r.Handle(CommandSubmitScore, NewSubmitScoreHandler(scores), authenticated)
	r.Handle(CommandGlobalLeaderboard, NewGlobalLeaderboardHandler(scores))
	r.Handle(CommandLocalLeaderboard, NewLocalLeaderboardHandler(scores), authenticated)
	r.Handle(CommandStats, NewStatsHandler(scores), authenticated)
	r.Handle(CommandUpdateProfile, NewUpdateProfileHandler(profiles), authenticated)
	r.Handle(CommandGetProfile, NewGetProfileHandler(profiles), authenticated)

	return r
}
