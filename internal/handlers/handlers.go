package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GlebRadaev/wdcheck/internal/config"
	withdrawalhandlers "github.com/GlebRadaev/wdcheck/internal/handlers/withdrawal"
	"github.com/GlebRadaev/wdcheck/pkg/auth"
)

type WithdrawalHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WithdrawalHandler WithdrawalHandler
	accessKey         string
}

func New(cfg *config.Config) *Handlers {
	return &Handlers{
		WithdrawalHandler: withdrawalhandlers.New(cfg.AmountLimit),
		accessKey:         cfg.AccessKey,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Route("/qa-test", func(r chi.Router) {
		r.Use(auth.AccessKeyMiddleware(h.accessKey))
		r.Post("/createwd", h.WithdrawalHandler.Create)
	})

	return r
}
