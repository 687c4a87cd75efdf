package handler

import (
	"net/http"

	"github.com/viddeck/viddeck/internal/domain"
	"github.com/viddeck/viddeck/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. uploadRoot is
// the directory stored uploads are served from; production gates the
// debug routes.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, uploads *service.UploadService, users domain.UserRepository, uploadRoot string, production bool) {
	authHandler := NewAuthHandler(auth)
	uploadHandler := NewUploadHandler(uploads)
	debugHandler := NewDebugHandler(users, production)
	authMW := NewAuthMiddleware(auth.Tokens())

	mux.HandleFunc("GET /{$}", HandleRoot)
	mux.HandleFunc("GET /health", HandleHealth)
	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("GET /_health", HandleHealthAlt)
	mux.HandleFunc("GET /ping", HandlePing)
	mux.HandleFunc("GET /api/status", HandleStatus)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("GET /api/auth/check/{email}", authHandler.HandleCheckEmail)
	mux.Handle("GET /api/user/profile", authMW.Require(http.HandlerFunc(authHandler.HandleProfile)))

	mux.HandleFunc("GET /api/debug/users", debugHandler.HandleList)
	mux.HandleFunc("DELETE /api/debug/users", debugHandler.HandleClear)

	// Upload is unauthenticated, matching the upstream contract.
	mux.HandleFunc("POST /api/upload", uploadHandler.HandleUpload)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadRoot))))

	mux.HandleFunc("/", HandleNotFound)
}
