package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/natividadesusana/drivenpass-go/internal/health"
	"github.com/natividadesusana/drivenpass-go/internal/http/handler"
	"github.com/natividadesusana/drivenpass-go/internal/http/middleware"
	"github.com/natividadesusana/drivenpass-go/internal/http/response"
	"github.com/natividadesusana/drivenpass-go/internal/security"
)

type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	CredentialHandler *handler.CredentialHandler
	CardHandler       *handler.CardHandler
	NoteHandler       *handler.NoteHandler
	EraseHandler      *handler.EraseHandler
	JWTManager        *security.JWTManager
	CORSOrigins       []string
	Readiness         *health.ProbeRunner
	EnableOTelHTTP    bool
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredRequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(dep.CORSOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if dep.Readiness == nil {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": []any{}})
			return
		}
		ready, results := dep.Readiness.Ready(r.Context())
		if ready {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": results})
			return
		}
		response.Error(w, r, http.StatusServiceUnavailable, "DEPENDENCY_UNREADY", "dependencies are not ready", map[string]any{"checks": results})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", dep.AuthHandler.SignUp)
		r.Post("/signin", dep.AuthHandler.SignIn)
	})

	vault := func(path string, h interface {
		Create(http.ResponseWriter, *http.Request)
		List(http.ResponseWriter, *http.Request)
		GetByID(http.ResponseWriter, *http.Request)
		Delete(http.ResponseWriter, *http.Request)
	}) {
		r.Route(path, func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(dep.JWTManager))
			r.Post("/", h.Create)
			r.Get("/", h.List)
			r.Get("/{id}", h.GetByID)
			r.Delete("/{id}", h.Delete)
		})
	}
	vault("/credentials", dep.CredentialHandler)
	vault("/cards", dep.CardHandler)
	vault("/notes", dep.NoteHandler)

	r.With(middleware.AuthMiddleware(dep.JWTManager)).Delete("/erase", dep.EraseHandler.Erase)

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}
