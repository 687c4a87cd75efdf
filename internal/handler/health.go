package handler

import (
	"net/http"
	"time"
)

const serviceVersion = "1.0.0"

// HandleRoot responds with a service banner; some deploy platforms
// probe the root path.
// GET /
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Viddeck Backend API",
		"status":  "running",
		"health":  "/health",
		"api":     "/api/status",
	})
}

// HandleHealth responds with a detailed health payload.
// GET /health
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "viddeck-backend",
		"version":   serviceVersion,
	})
}

// HandleHealthz responds with a bare "OK" for platforms that expect a
// plain-text probe.
// GET /healthz
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// HandleHealthAlt is an alternative JSON probe.
// GET /_health
func HandleHealthAlt(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandlePing responds "pong".
// GET /ping
func HandlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

// HandleStatus reports that the API is up.
// GET /api/status
func HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Viddeck API is running!",
	})
}

// HandleNotFound is the JSON fallback for unmatched routes.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Route not found")
}
