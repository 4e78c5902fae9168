package rest

import (
	"net/http"

	"github.com/xunjianyin/rank-anything-sub000/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Proposals *ProposalHandler
	History   *HistoryHandler
	Users     *UserHandler
	Admin     *AdminHandler
	Health    *HealthHandler
}

// NewRouter builds the ServeMux and wraps it with the middleware chain.
func NewRouter(h Handlers, mws ...middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	mux.HandleFunc("POST /api/proposals", h.Proposals.Create)
	mux.HandleFunc("GET /api/proposals", h.Proposals.List)
	mux.HandleFunc("GET /api/proposals/{id}", h.Proposals.Get)
	mux.HandleFunc("GET /api/proposals/{id}/votes", h.Proposals.Votes)
	mux.HandleFunc("POST /api/proposals/{id}/vote", h.Proposals.Vote)
	mux.HandleFunc("POST /api/proposals/{id}/execute", h.Proposals.Execute)

	admin := func(fn http.HandlerFunc) http.Handler { return middleware.Admin(fn) }
	mux.Handle("POST /api/admin/proposals/{id}/approve", admin(h.Admin.ApproveProposal))
	mux.Handle("POST /api/admin/proposals/{id}/reject", admin(h.Admin.RejectProposal))
	mux.Handle("GET /api/admin/policy", admin(h.Admin.GetPolicy))
	mux.Handle("PUT /api/admin/policy", admin(h.Admin.UpdatePolicy))

	mux.HandleFunc("GET /api/edit-history/{targetType}/{targetID}", h.History.History)
	mux.HandleFunc("GET /api/editors/{targetType}/{targetID}", h.History.Editors)

	mux.HandleFunc("GET /api/users/{id}/restrictions", h.Users.Restrictions)
	mux.HandleFunc("POST /api/users/{id}/rate", h.Users.Rate)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	return middleware.Chain(mws...)(mux)
}
