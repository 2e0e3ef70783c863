package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/sv6095/InnerEcho/internal/handlers"
)

func SetupRoutes(r *chi.Mux, journal *handlers.JournalHandler, profiles *handlers.ProfileHandler) {
	// Journal entry routes ("search" is a literal segment, so chi matches it
	// before the {id} wildcard)
	r.Get("/api/journal", journal.List)
	r.Get("/api/journal/search", journal.Search)
	r.Get("/api/journal/{id}", journal.Get)
	r.Post("/api/journal", journal.Create)
	r.Put("/api/journal/{id}", journal.Update)
	r.Delete("/api/journal/{id}", journal.Delete)

	// User profile routes
	r.Get("/api/userProfiles", profiles.List)
	r.Get("/api/userProfiles/current", profiles.Current)
	r.Get("/api/userProfiles/{id}", profiles.Get)
	r.Post("/api/userProfiles", profiles.Create)
	r.Put("/api/userProfiles/{id}", profiles.Update)
	r.Delete("/api/userProfiles/{id}", profiles.Delete)

	// Session placeholder
	r.Post("/api/logout", profiles.Logout)
}
