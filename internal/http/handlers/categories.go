package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/domain"
)

type categoryDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	UserID      *int64  `json:"user_id"`
}

func toCategoryDTO(c *domain.Category) categoryDTO {
	return categoryDTO{ID: c.ID, Name: c.Name, Description: c.Description, UserID: c.UserID}
}

type categoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	UserID      *int64  `json:"user_id"`
}

func (a *App) CategoriesCreate(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Name == nil {
		a.message(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}
	category := &domain.Category{Name: *req.Name, Description: req.Description, UserID: req.UserID}
	if err := a.Categories.Create(r.Context(), category); err != nil {
		a.internal(w, r, err)
		return
	}
	a.created(w, category.ID, "Category created successfully")
}

func (a *App) CategoriesList(w http.ResponseWriter, r *http.Request) {
	categories, err := a.Categories.List(r.Context())
	if err != nil {
		a.internal(w, r, err)
		return
	}
	items := make([]categoryDTO, 0, len(categories))
	for i := range categories {
		items = append(items, toCategoryDTO(&categories[i]))
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) CategoriesGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Category")
		return
	}
	category, err := a.Categories.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Category")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.json(w, http.StatusOK, toCategoryDTO(category))
}

func (a *App) CategoriesUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Category")
		return
	}
	category, err := a.Categories.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Category")
			return
		}
		a.internal(w, r, err)
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.UserID != nil {
		category.UserID = req.UserID
	}

	if err := a.Categories.Update(r.Context(), category); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Category")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Category updated successfully")
}

func (a *App) CategoriesDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Category")
		return
	}
	if err := a.Categories.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Category")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Category deleted successfully")
}
