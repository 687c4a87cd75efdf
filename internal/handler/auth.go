package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/viddeck/viddeck/internal/domain"
	"github.com/viddeck/viddeck/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister processes a JSON registration request.
// POST /api/auth/register
// Request:  {"email":"...","password":"...","name":"...","id":"..."}
// Response: 201 {"message":"...","token":"...","user":{...}}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		ID       string `json:"id"`
	}
	if err := readJSON(r, &req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Email and password are required", "missing_required_fields")
		return
	}

	user, token, err := h.auth.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		ID:       req.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeErrorCode(w, http.StatusBadRequest, "Email and password are required", "missing_required_fields")
		case errors.Is(err, domain.ErrAlreadyExists):
			writeErrorCode(w, http.StatusConflict, "A user with this ID or email already exists", "already_exists")
		default:
			slog.Error("register user", "error", err)
			writeErrorCode(w, http.StatusInternalServerError, "Internal server error", "internal_error")
		}
		return
	}

	slog.Info("user registered", "email", user.Email, "id", user.ID)

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"token":   token,
		"user":    toUserDTO(user),
	})
}

// HandleLogin processes a JSON login request.
// POST /api/auth/login
// Request:  {"email":"...","password":"..."}
// Response: 200 {"message":"...","token":"...","user":{...}}
//
// Unknown email and wrong password produce the identical 401 body, so
// responses cannot be used to probe which emails are registered.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			slog.Error("login user", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user":    toUserDTO(user),
	})
}

// HandleProfile returns the profile of the authenticated user.
// GET /api/user/profile (requires bearer token)
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	user, err := h.auth.Profile(r.Context(), identity.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("load profile", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// HandleCheckEmail reports whether an account exists for an email.
// GET /api/auth/check/{email}
func (h *AuthHandler) HandleCheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	exists, err := h.auth.CheckEmail(r.Context(), email)
	if err != nil {
		slog.Error("check email", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"exists": exists,
		"email":  email,
	})
}
