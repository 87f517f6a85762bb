package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/auth"
	"server/internal/domain"
)

type userDTO struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	ProfilePicture *string `json:"profile_picture"`
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.ProfilePicture,
	}
}

// UsersCreate shares the signup contract; /users POST and /signup behave the same.
func (a *App) UsersCreate(w http.ResponseWriter, r *http.Request) {
	a.Signup(w, r)
}

func (a *App) UsersList(w http.ResponseWriter, r *http.Request) {
	users, err := a.Users.List(r.Context())
	if err != nil {
		a.internal(w, r, err)
		return
	}
	items := make([]userDTO, 0, len(users))
	for i := range users {
		items = append(items, toUserDTO(&users[i]))
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) UsersGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "User")
		return
	}
	user, err := a.Users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "User")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.json(w, http.StatusOK, toUserDTO(user))
}

type userUpdateRequest struct {
	Username       *string `json:"username"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	ProfilePicture *string `json:"profile_picture"`
}

func (a *App) UsersUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "User")
		return
	}
	user, err := a.Users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "User")
			return
		}
		a.internal(w, r, err)
		return
	}

	var req userUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			a.internal(w, r, err)
			return
		}
		user.Password = hash
	}
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = req.ProfilePicture
	}

	if err := a.Users.Update(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			a.notFound(w, "User")
		case errors.Is(err, domain.ErrEmailTaken):
			a.message(w, http.StatusBadRequest, "Email address already exists")
		default:
			a.internal(w, r, err)
		}
		return
	}
	a.message(w, http.StatusOK, "User updated successfully")
}

func (a *App) UsersDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "User")
		return
	}
	if err := a.Users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "User")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "User deleted successfully")
}
