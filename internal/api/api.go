package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/novalis-io/identity/internal/auth"
	"github.com/novalis-io/identity/internal/config"
	"github.com/novalis-io/identity/internal/mailer"
	"github.com/novalis-io/identity/internal/store"
)

// Api wires the identity handlers to their collaborators and owns the router.
type Api struct {
	Config config.Config
	Store  store.UserStore
	Mailer mailer.Sender
	Tokens *auth.TokenManager
	Router *chi.Mux
}

func NewApi(cfg config.Config, st store.UserStore, m mailer.Sender) *Api {
	api := &Api{
		Config: cfg,
		Store:  st,
		Mailer: m,
		Tokens: auth.NewTokenManager(cfg.JWTSecret),
		Router: chi.NewRouter(),
	}
	api.setupRoutes()
	return api
}

func (api *Api) setupRoutes() {
	r := api.Router

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{api.Config.ClientURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/heartbeat"))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", api.SignupHandler)
		r.Post("/verify-email", api.VerifyEmailHandler)
		r.Post("/login", api.LoginHandler)
		r.Post("/logout", api.LogoutHandler)
		r.Post("/forgot-password", api.ForgotPasswordHandler)
		r.Post("/reset-password/{token}", api.ResetPasswordHandler)

		r.Group(func(r chi.Router) {
			r.Use(api.RequireAuth)
			r.Get("/check-auth", api.CheckAuthHandler)
		})
	})
}

func (api *Api) Serve() {
	addr := fmt.Sprintf("0.0.0.0:%d", api.Config.Port)
	log.Printf("Starting identity API on %s", addr)
	log.Fatal(http.ListenAndServe(addr, api.Router))
}
