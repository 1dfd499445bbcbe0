package router

import (
	"net/http"

	"github.com/AlenaMolokova/canadasin/internal/handlers"
	"github.com/AlenaMolokova/canadasin/internal/metrics"
	"github.com/AlenaMolokova/canadasin/internal/middleware"
	"github.com/AlenaMolokova/canadasin/internal/models"
	"github.com/AlenaMolokova/canadasin/internal/sin"
	"github.com/AlenaMolokova/canadasin/internal/usecase"
	"github.com/AlenaMolokova/canadasin/internal/validation"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	UserPrefix   = "/api/user"
	RegisterPath = "/register"
	LoginPath    = "/login"
	ChecksPath   = "/checks"

	SINValidatePath = "/api/sin/validate"
	BNValidatePath  = "/api/bn/validate"
	GeneratePath    = "/api/sin/generate"
	MetricsPath     = "/metrics"
)

type Store interface {
	models.UserStorage
	models.CheckStorage
}

type Deps struct {
	Store          Store
	JWTSecret      string
	GenerateLimit  int
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
}

func SetupRoutes(d Deps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	validator := validation.NewSINValidator(d.Metrics)
	checkUC := usecase.NewCheckUseCase(d.Store, validator)

	r.Post(UserPrefix+RegisterPath, handlers.NewRegisterHandler(d.Store, d.JWTSecret, d.Metrics).ServeHTTP)
	r.Post(UserPrefix+LoginPath, handlers.NewLoginHandler(d.Store, d.JWTSecret).ServeHTTP)

	r.Post(SINValidatePath, handlers.NewValidateHandler(validator, sin.KindSIN).ServeHTTP)
	r.Post(BNValidatePath, handlers.NewValidateHandler(validator, sin.KindBN).ServeHTTP)
	r.Get(GeneratePath, handlers.NewGenerateHandler(d.GenerateLimit).ServeHTTP)

	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, MetricsPath, d.MetricsHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(d.JWTSecret))
		r.Post(UserPrefix+ChecksPath, handlers.NewCheckHandler(checkUC).ServeHTTP)
		r.Get(UserPrefix+ChecksPath, handlers.NewChecksGetHandler(checkUC).ServeHTTP)
	})

	return r
}
