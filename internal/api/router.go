package api

import (
	"fmt"
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/verifica-mx/campaign-verifier/docs"

	"github.com/verifica-mx/campaign-verifier/internal/api/handlers"
	"github.com/verifica-mx/campaign-verifier/internal/api/middleware"
	"github.com/verifica-mx/campaign-verifier/internal/config"
	"github.com/rs/cors"
)

func SetupRouter(campaigns *handlers.CampaignHandler) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	authMux := http.NewServeMux()
	authMux.HandleFunc("/sign-up", handlers.RegisterUser)
	authMux.HandleFunc("/login", handlers.LoginUser)
	authMux.HandleFunc("/session", handlers.GetSession)
	authMux.HandleFunc("/google/login", handlers.HandleGoogleLogin)
	authMux.HandleFunc("/google/callback", handlers.HandleGoogleCallback)
	// Logout must live on the auth mux: /api/v1/auth/ is the more specific
	// pattern, so a /auth/logout registration under /api/v1/ never matches.
	authMux.Handle("/logout", middleware.AuthMiddleware(http.HandlerFunc(handlers.Logout)))

	mainMux.Handle("/api/v1/auth/",
		http.StripPrefix("/api/v1/auth", authMux),
	)

	// Verification and search are public: recipients hold only a link or QR.
	verifyMux := http.NewServeMux()
	verifyMux.HandleFunc("/{id}", campaigns.Verify)
	verifyMux.HandleFunc("/{id}/qr", campaigns.VerifyQR)

	mainMux.Handle("/api/v1/verify/",
		http.StripPrefix("/api/v1/verify", verifyMux),
	)

	mainMux.HandleFunc("/api/v1/search", campaigns.Search)

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()

	protectedMux.HandleFunc("/campaigns", campaigns.Upload)
	protectedMux.HandleFunc("/dashboard", campaigns.Dashboard)

	mainMux.Handle("/api/v1/",
		http.StripPrefix(
			"/api/v1",
			middleware.AuthMiddleware(protectedMux),
		),
	)

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
