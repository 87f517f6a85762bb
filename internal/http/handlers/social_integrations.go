package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/domain"
)

type socialIntegrationDTO struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"user_id"`
	CategoryID      int64  `json:"category_id"`
	AssociationName string `json:"association_name"`
	Description     string `json:"description"`
	Interested      bool   `json:"interested"`
	Saved           bool   `json:"saved"`
}

func toSocialIntegrationDTO(s *domain.SocialIntegration) socialIntegrationDTO {
	return socialIntegrationDTO{
		ID:              s.ID,
		UserID:          s.UserID,
		CategoryID:      s.CategoryID,
		AssociationName: s.AssociationName,
		Description:     s.Description,
		Interested:      s.Interested,
		Saved:           s.Saved,
	}
}

type socialIntegrationRequest struct {
	UserID          *int64  `json:"user_id"`
	CategoryID      *int64  `json:"category_id"`
	AssociationName *string `json:"association_name"`
	Description     *string `json:"description"`
	Interested      *bool   `json:"interested"`
	Saved           *bool   `json:"saved"`
}

func (a *App) SocialIntegrationsCreate(w http.ResponseWriter, r *http.Request) {
	var req socialIntegrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.UserID == nil || req.CategoryID == nil || req.AssociationName == nil || req.Description == nil {
		a.message(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}
	integration := &domain.SocialIntegration{
		UserID:          *req.UserID,
		CategoryID:      *req.CategoryID,
		AssociationName: *req.AssociationName,
		Description:     *req.Description,
	}
	if req.Interested != nil {
		integration.Interested = *req.Interested
	}
	if req.Saved != nil {
		integration.Saved = *req.Saved
	}
	if err := a.SocialIntegrations.Create(r.Context(), integration); err != nil {
		a.internal(w, r, err)
		return
	}
	a.created(w, integration.ID, "Social integration created successfully")
}

func (a *App) SocialIntegrationsList(w http.ResponseWriter, r *http.Request) {
	integrations, err := a.SocialIntegrations.List(r.Context())
	if err != nil {
		a.internal(w, r, err)
		return
	}
	items := make([]socialIntegrationDTO, 0, len(integrations))
	for i := range integrations {
		items = append(items, toSocialIntegrationDTO(&integrations[i]))
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) SocialIntegrationsGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Social integration")
		return
	}
	integration, err := a.SocialIntegrations.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Social integration")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.json(w, http.StatusOK, toSocialIntegrationDTO(integration))
}

func (a *App) SocialIntegrationsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Social integration")
		return
	}
	integration, err := a.SocialIntegrations.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Social integration")
			return
		}
		a.internal(w, r, err)
		return
	}

	var req socialIntegrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.UserID != nil {
		integration.UserID = *req.UserID
	}
	if req.CategoryID != nil {
		integration.CategoryID = *req.CategoryID
	}
	if req.AssociationName != nil {
		integration.AssociationName = *req.AssociationName
	}
	if req.Description != nil {
		integration.Description = *req.Description
	}
	if req.Interested != nil {
		integration.Interested = *req.Interested
	}
	if req.Saved != nil {
		integration.Saved = *req.Saved
	}

	if err := a.SocialIntegrations.Update(r.Context(), integration); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Social integration")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Social integration updated successfully")
}

func (a *App) SocialIntegrationsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Social integration")
		return
	}
	if err := a.SocialIntegrations.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Social integration")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Social integration deleted successfully")
}
