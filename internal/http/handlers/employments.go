package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/domain"
)

type employmentDTO struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	CategoryID   int64   `json:"category_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Requirements *string `json:"requirements"`
	Location     *string `json:"location"`
	SalaryRange  *int64  `json:"salary_range"`
}

func toEmploymentDTO(e *domain.Employment) employmentDTO {
	return employmentDTO{
		ID:           e.ID,
		UserID:       e.UserID,
		CategoryID:   e.CategoryID,
		Title:        e.Title,
		Description:  e.Description,
		Requirements: e.Requirements,
		Location:     e.Location,
		SalaryRange:  e.SalaryRange,
	}
}

type employmentRequest struct {
	UserID       *int64  `json:"user_id"`
	CategoryID   *int64  `json:"category_id"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	Location     *string `json:"location"`
	SalaryRange  *int64  `json:"salary_range"`
}

func (a *App) EmploymentsCreate(w http.ResponseWriter, r *http.Request) {
	var req employmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.UserID == nil || req.CategoryID == nil || req.Title == nil || req.Description == nil {
		a.message(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}
	employment := &domain.Employment{
		UserID:       *req.UserID,
		CategoryID:   *req.CategoryID,
		Title:        *req.Title,
		Description:  *req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		SalaryRange:  req.SalaryRange,
	}
	if err := a.Employments.Create(r.Context(), employment); err != nil {
		a.internal(w, r, err)
		return
	}
	a.created(w, employment.ID, "Employment created successfully")
}

func (a *App) EmploymentsList(w http.ResponseWriter, r *http.Request) {
	employments, err := a.Employments.List(r.Context())
	if err != nil {
		a.internal(w, r, err)
		return
	}
	items := make([]employmentDTO, 0, len(employments))
	for i := range employments {
		items = append(items, toEmploymentDTO(&employments[i]))
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) EmploymentsGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Employment")
		return
	}
	employment, err := a.Employments.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Employment")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.json(w, http.StatusOK, toEmploymentDTO(employment))
}

func (a *App) EmploymentsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Employment")
		return
	}
	employment, err := a.Employments.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Employment")
			return
		}
		a.internal(w, r, err)
		return
	}

	var req employmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.UserID != nil {
		employment.UserID = *req.UserID
	}
	if req.CategoryID != nil {
		employment.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		employment.Title = *req.Title
	}
	if req.Description != nil {
		employment.Description = *req.Description
	}
	if req.Requirements != nil {
		employment.Requirements = req.Requirements
	}
	if req.Location != nil {
		employment.Location = req.Location
	}
	if req.SalaryRange != nil {
		employment.SalaryRange = req.SalaryRange
	}

	if err := a.Employments.Update(r.Context(), employment); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Employment")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Employment updated successfully")
}

func (a *App) EmploymentsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Employment")
		return
	}
	if err := a.Employments.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Employment")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Employment deleted successfully")
}
