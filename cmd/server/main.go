package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/verifica-mx/campaign-verifier/internal/api"
	"github.com/verifica-mx/campaign-verifier/internal/api/handlers"
	"github.com/verifica-mx/campaign-verifier/internal/config"
	"github.com/verifica-mx/campaign-verifier/internal/repositories"
	"github.com/verifica-mx/campaign-verifier/internal/service"
)

// @title Campaign Verifier API
// @version 1.0
// @description Authenticity portal for campaign images: upload, verify, search.
func main() {
	// Connect to database and object storage
	repositories.ConnectDatabase()
	storage := repositories.NewR2Storage(config.Envs.R2)

	store := repositories.NewCampaignStore(repositories.DB)
	campaignService := service.NewCampaignService(store, storage, config.Envs.PublicAppURL)

	mux := api.SetupRouter(handlers.NewCampaignHandler(campaignService))

	port := config.Envs.Port

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: mux,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting campaign verifier server on port: %s", port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", port, err)
	}
}
