package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/sv6095/InnerEcho/internal/config"
	"github.com/sv6095/InnerEcho/internal/database"
	"github.com/sv6095/InnerEcho/internal/handlers"
	"github.com/sv6095/InnerEcho/internal/routes"
	"github.com/sv6095/InnerEcho/internal/services"
	"github.com/sv6095/InnerEcho/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if cfg.IsProduction() && len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "http://localhost:3000" {
		log.Println("⚠️  WARNING: running in production with only the localhost CORS origin. Set ALLOWED_ORIGINS.")
	}

	// Log connection attempt (without showing password)
	log.Printf("Connecting to MongoDB...")
	if cfg.MongoURI != "" {
		log.Printf("MongoDB URI: %s", maskMongoURI(cfg.MongoURI))
	}
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	entryStore := store.NewMongoEntryStore(database.DB)
	profileStore := store.NewMongoProfileStore(database.DB)

	// Ensure MongoDB indexes for the owner/tag lookups
	if err := entryStore.EnsureIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure journal indexes: %v", err)
	} else {
		log.Println("✅ MongoDB journal indexes ensured")
	}

	journalService := services.NewJournalService(entryStore)
	profileService := services.NewProfileService(profileStore)

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, handlers.NewJournalHandler(journalService), handlers.NewProfileHandler(profileService))

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET    /health")
	log.Println("  GET    /api/journal")
	log.Println("  GET    /api/journal/search")
	log.Println("  GET    /api/journal/{id}")
	log.Println("  POST   /api/journal")
	log.Println("  PUT    /api/journal/{id}")
	log.Println("  DELETE /api/journal/{id}")
	log.Println("  GET    /api/userProfiles")
	log.Println("  GET    /api/userProfiles/current")
	log.Println("  GET    /api/userProfiles/{id}")
	log.Println("  POST   /api/userProfiles")
	log.Println("  PUT    /api/userProfiles/{id}")
	log.Println("  DELETE /api/userProfiles/{id}")
	log.Println("  POST   /api/logout")

	log.Printf("🚀 InnerEcho backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// maskMongoURI hides the password portion of a mongodb:// connection string.
func maskMongoURI(uri string) string {
	if !strings.Contains(uri, "@") {
		return uri
	}
	parts := strings.Split(uri, "@")
	if !strings.Contains(parts[0], ":") {
		return uri
	}
	userPass := strings.Split(parts[0], ":")
	if len(userPass) >= 3 {
		return strings.Replace(uri, userPass[2], "***", 1)
	}
	return uri
}
