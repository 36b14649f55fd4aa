package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/manishasuddala09/customercrudfrontend/internal/api"
	"github.com/manishasuddala09/customercrudfrontend/internal/config"
	"github.com/manishasuddala09/customercrudfrontend/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	client := api.NewClient(cfg.APIBaseURL, &http.Client{})
	r := web.SetupRouter(client, "templates/*.html", cfg.PerPage)

	log.Printf("admin ui starting on port %s (api: %s)", cfg.Port, cfg.APIBaseURL)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
