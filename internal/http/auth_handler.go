package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type AuthHandler struct {
	timeout time.Duration
}

func NewAuthHandler(timeout time.Duration) *AuthHandler {
	return &AuthHandler{timeout: timeout}
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type SessionResponseDTO struct {
	Authenticated   bool   `json:"authenticated"`
	Email           string `json:"email,omitempty"`
	RememberedEmail string `json:"remembered_email,omitempty"`
}

// Login validates credentials through the session store. Failures get one
// generic message regardless of which field was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	scope := scopeFromContext(r.Context())

	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if !scope.Session.Login(req.Email, req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
		return
	}

	if req.Remember {
		scope.Session.Remember(ctx, req.Email)
	}

	respondJSON(w, http.StatusOK, SessionResponseDTO{
		Authenticated: true,
		Email:         req.Email,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	scope := scopeFromContext(r.Context())
	scope.Session.Logout()
	respondJSON(w, http.StatusOK, SessionResponseDTO{Authenticated: false})
}

// Session reports the live authentication state plus the remembered email,
// which the login form uses for prefill only.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	scope := scopeFromContext(r.Context())

	resp := SessionResponseDTO{}
	if email, ok := scope.Session.Email(); ok {
		resp.Authenticated = true
		resp.Email = email
	}
	if remembered, ok := scope.Session.Remembered(ctx); ok {
		resp.RememberedEmail = remembered
	}

	respondJSON(w, http.StatusOK, resp)
}

// ForgetRemembered clears the persisted login prefill.
func (h *AuthHandler) ForgetRemembered(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	scope := scopeFromContext(r.Context())
	scope.Session.Forget(ctx)
	w.WriteHeader(http.StatusNoContent)
}
