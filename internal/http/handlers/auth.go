package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/auth"
	"server/internal/domain"
	"server/internal/middleware"
)

type signupRequest struct {
	Email          *string `json:"email"`
	Username       *string `json:"username"`
	Password       *string `json:"password"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	ProfilePicture *string `json:"profile_picture"`
}

// Signup registers a new account. It does not establish a session; clients
// log in separately.
func (a *App) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Email == nil || req.Username == nil || req.Password == nil {
		a.message(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}

	if _, err := a.Users.GetByEmail(r.Context(), *req.Email); err == nil {
		a.message(w, http.StatusBadRequest, "Email address already exists")
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		a.internal(w, r, err)
		return
	}

	hash, err := auth.HashPassword(*req.Password)
	if err != nil {
		a.internal(w, r, err)
		return
	}
	user := &domain.User{
		Username:       *req.Username,
		Email:          *req.Email,
		Password:       hash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ProfilePicture: req.ProfilePicture,
	}
	if err := a.Users.Create(r.Context(), user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			a.message(w, http.StatusBadRequest, "Email address already exists")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.created(w, user.ID, "User created successfully")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and establishes the session. The failure message
// is identical for unknown emails and wrong passwords.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	user, err := a.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.message(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		a.internal(w, r, err)
		return
	}
	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		a.message(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := middleware.SignIn(a.Sessions, w, r, user.ID); err != nil {
		a.internal(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"message":         "Logged in successfully",
		"profile_picture": user.ProfilePicture,
	})
}

// Logout clears the session. The route is guarded by RequireSession.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	if err := middleware.SignOut(a.Sessions, w, r); err != nil {
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Logged out successfully")
}
