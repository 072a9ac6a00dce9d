package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/wardrobe-service/internal/http/handlers"
	"github.com/pribylovaa/wardrobe-service/internal/http/middleware"
	"github.com/pribylovaa/wardrobe-service/internal/service"
)

// Options - параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	// Metrics - HTTP-метрики; nil отключает мидлвар.
	Metrics *middleware.Metrics
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Metrics != nil {
		root.Use(opts.Metrics.Middleware())
	}
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	registerRoutes(root, handlers.New(svc))

	return root
}

// registerRoutes - единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// users
	r.Post("/users", h.CreateUser)
	r.Get("/users/{external_id}", h.GetUser)
	r.Put("/users/{external_id}", h.UpdateUser)
	r.Delete("/users/{external_id}", h.DeleteUser)

	// onboarding
	r.Put("/users/{external_id}/onboarding", h.SaveOnboarding)
	r.Put("/users/{external_id}/body-type", h.UpdateBodyType)

	// wardrobe
	r.Get("/users/{external_id}/wardrobe", h.GetWardrobe)
	r.Post("/wardrobes/{user_id}", h.CreateWardrobe)
	r.Put("/wardrobes/{user_id}/variants", h.SwapVariant)
	r.Post("/clothing-variants/search", h.FindVariant)
}
