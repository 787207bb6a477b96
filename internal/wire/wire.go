package wire

import (
	"net/http"

	"film-social/internal/adaptor"
	"film-social/internal/data/cache"
	"film-social/internal/data/repository"
	"film-social/internal/usecase"
	"film-social/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring assembles services, handlers and routes into a ready router.
func Wiring(repo *repository.Repository, filmCache *cache.FilmCache, logger *zap.Logger) *App {
	service := usecase.NewService(repo, filmCache, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireUser(r, handler.User)
	wireFilm(r, handler.Film)
	wireReview(r, handler.Review)
	wireDirector(r, handler.Director)
	wireReference(r, handler.Genre, handler.Mpa)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
