package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"radhakart/internal/models"
	"radhakart/internal/store"
)

// Auth groups the signup and login handlers.
type Auth struct {
	users store.UserStore
}

// NewAuth creates the auth handler group.
func NewAuth(users store.UserStore) *Auth {
	return &Auth{users: users}
}

// signupRequest is the signup form payload.
type signupRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// credentials is the login payload.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authResponse wraps a successful signup or login.
type authResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

// Signup creates an account. Duplicate usernames and missing required
// fields are both client errors.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := validateSignup(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := h.users.Create(r.Context(), &models.User{
		Name:     strings.TrimSpace(req.Name),
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Pincode:  req.Pincode,
		Phone:    req.Phone,
		Email:    req.Email,
		Username: strings.TrimSpace(req.Username),
	}, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			writeError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		slog.Error("signup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	slog.Info("account created", "username", user.Username)
	writeJSON(w, http.StatusOK, authResponse{Success: true, User: user})
}

// Login verifies a credential pair. An unknown username and a wrong
// password both come back as 400 with the same shape; the frontend shows
// one generic message either way. A hardened build would also equalize
// timing between the two cases; today it does not.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, store.ErrWrongPassword) {
			writeError(w, http.StatusBadRequest, "Invalid username or password")
			return
		}
		slog.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Success: true, User: user})
}
