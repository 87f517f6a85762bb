package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/domain"
)

type applicationDTO struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	EmploymentID int64  `json:"employment_id"`
	Status       string `json:"status"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email"`
	CoverLetter  string `json:"cover_letter"`
	Resume       string `json:"resume"`
	Linkedin     string `json:"linkedin"`
	Portfolio    string `json:"portfolio"`
}

func toApplicationDTO(ap *domain.Application) applicationDTO {
	return applicationDTO{
		ID:           ap.ID,
		UserID:       ap.UserID,
		EmploymentID: ap.EmploymentID,
		Status:       string(ap.Status),
		Name:         ap.Name,
		PhoneNumber:  ap.PhoneNumber,
		Email:        ap.Email,
		CoverLetter:  ap.CoverLetter,
		Resume:       ap.Resume,
		Linkedin:     ap.Linkedin,
		Portfolio:    ap.Portfolio,
	}
}

type applicationRequest struct {
	UserID       *int64  `json:"user_id"`
	EmploymentID *int64  `json:"employment_id"`
	Status       *string `json:"status"`
	Name         *string `json:"name"`
	PhoneNumber  *string `json:"phone_number"`
	Email        *string `json:"email"`
	CoverLetter  *string `json:"cover_letter"`
	Resume       *string `json:"resume"`
	Linkedin     *string `json:"linkedin"`
	Portfolio    *string `json:"portfolio"`
}

func (a *App) ApplicationsCreate(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.UserID == nil || req.EmploymentID == nil || req.Status == nil || req.Name == nil ||
		req.PhoneNumber == nil || req.Email == nil || req.CoverLetter == nil || req.Resume == nil ||
		req.Linkedin == nil || req.Portfolio == nil {
		a.message(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}
	status, err := domain.ParseApplicationStatus(*req.Status)
	if err != nil {
		a.message(w, http.StatusBadRequest, err.Error())
		return
	}
	application := &domain.Application{
		UserID:       *req.UserID,
		EmploymentID: *req.EmploymentID,
		Status:       status,
		Name:         *req.Name,
		PhoneNumber:  *req.PhoneNumber,
		Email:        *req.Email,
		CoverLetter:  *req.CoverLetter,
		Resume:       *req.Resume,
		Linkedin:     *req.Linkedin,
		Portfolio:    *req.Portfolio,
	}
	if err := a.Applications.Create(r.Context(), application); err != nil {
		a.internal(w, r, err)
		return
	}
	a.created(w, application.ID, "Application created successfully")
}

func (a *App) ApplicationsList(w http.ResponseWriter, r *http.Request) {
	applications, err := a.Applications.List(r.Context())
	if err != nil {
		a.internal(w, r, err)
		return
	}
	items := make([]applicationDTO, 0, len(applications))
	for i := range applications {
		items = append(items, toApplicationDTO(&applications[i]))
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) ApplicationsGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Application")
		return
	}
	application, err := a.Applications.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Application")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.json(w, http.StatusOK, toApplicationDTO(application))
}

func (a *App) ApplicationsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Application")
		return
	}
	application, err := a.Applications.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Application")
			return
		}
		a.internal(w, r, err)
		return
	}

	var req applicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Status != nil {
		status, err := domain.ParseApplicationStatus(*req.Status)
		if err != nil {
			a.message(w, http.StatusBadRequest, err.Error())
			return
		}
		application.Status = status
	}
	if req.UserID != nil {
		application.UserID = *req.UserID
	}
	if req.EmploymentID != nil {
		application.EmploymentID = *req.EmploymentID
	}
	if req.Name != nil {
		application.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		application.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		application.Email = *req.Email
	}
	if req.CoverLetter != nil {
		application.CoverLetter = *req.CoverLetter
	}
	if req.Resume != nil {
		application.Resume = *req.Resume
	}
	if req.Linkedin != nil {
		application.Linkedin = *req.Linkedin
	}
	if req.Portfolio != nil {
		application.Portfolio = *req.Portfolio
	}

	if err := a.Applications.Update(r.Context(), application); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Application")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Application updated successfully")
}

func (a *App) ApplicationsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Application")
		return
	}
	if err := a.Applications.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Application")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Application deleted successfully")
}
