package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/gildedrose/internal/imaging"
	"github.com/erazemk/gildedrose/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string, images *imaging.Processor) http.Handler {
	if images == nil {
		images = imaging.NewProcessor(0)
	}

	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	itemsHandler := &ItemsHandler{DB: db, Images: images}
	daysHandler := &DaysHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)
	requireAdmin := RequireRole(model.RoleAdmin)
	requireManager := RequireRole(model.RoleManager)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Users (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("DELETE /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Delete))))

	// Items: read (all roles), write (manager+).
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", authMW(requireManager(http.HandlerFunc(itemsHandler.Create))))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/items/{id}", authMW(requireManager(http.HandlerFunc(itemsHandler.Update))))
	mux.Handle("DELETE /api/items/{id}", authMW(requireManager(http.HandlerFunc(itemsHandler.Delete))))
	mux.Handle("PUT /api/items/{id}/image", authMW(requireManager(http.HandlerFunc(itemsHandler.UploadImage))))
	mux.Handle("GET /api/items/{id}/image", authMW(http.HandlerFunc(itemsHandler.GetImage)))
	mux.Handle("GET /api/items/{id}/history", authMW(http.HandlerFunc(itemsHandler.GetHistory)))

	// Days: read (all), advance (manager+).
	mux.Handle("GET /api/days", authMW(http.HandlerFunc(daysHandler.Current)))
	mux.Handle("POST /api/days/advance", authMW(requireManager(http.HandlerFunc(daysHandler.Advance))))

	return mux
}
