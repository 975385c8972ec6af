package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/klarity-app/klarity/pkg/backup"
	"github.com/klarity-app/klarity/pkg/handlers"
	"github.com/klarity-app/klarity/pkg/kv"
	custommw "github.com/klarity-app/klarity/pkg/middleware"
	"github.com/klarity-app/klarity/pkg/storage/kvstore"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dataFile := os.Getenv("KLARITY_DATA_FILE")
	if dataFile == "" {
		dataFile = "data/klarity.json"
	}

	substrate, err := kv.OpenFileStore(dataFile)
	if err != nil {
		log.Fatalf("Failed to open data file %s: %v", dataFile, err)
	}
	defer substrate.Close()

	// Create our storage implementation and the backup controller
	store := kvstore.New(substrate)
	controller := backup.New(store, substrate)

	// Create our handler
	handler := handlers.NewApiHandler(store, controller)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(custommw.NewStructuredLogger(logger))
	router.Mount("/", handler.Routes())

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe("127.0.0.1:"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
