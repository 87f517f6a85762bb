package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/domain"
)

type fundingDTO struct {
	ID                  int64   `json:"id"`
	CategoryID          int64   `json:"category_id"`
	GrantName           string  `json:"grant_name"`
	GrantType           string  `json:"grant_type"`
	Amount              int64   `json:"amount"`
	Description         *string `json:"description"`
	EligibilityCriteria *string `json:"eligibility_criteria"`
}

func toFundingDTO(f *domain.Funding) fundingDTO {
	return fundingDTO{
		ID:                  f.ID,
		CategoryID:          f.CategoryID,
		GrantName:           f.GrantName,
		GrantType:           string(f.GrantType),
		Amount:              f.Amount,
		Description:         f.Description,
		EligibilityCriteria: f.EligibilityCriteria,
	}
}

type fundingRequest struct {
	CategoryID          *int64  `json:"category_id"`
	GrantName           *string `json:"grant_name"`
	GrantType           *string `json:"grant_type"`
	Amount              *int64  `json:"amount"`
	Description         *string `json:"description"`
	EligibilityCriteria *string `json:"eligibility_criteria"`
}

func (a *App) FundingsCreate(w http.ResponseWriter, r *http.Request) {
	var req fundingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.CategoryID == nil || req.GrantName == nil || req.GrantType == nil || req.Amount == nil {
		a.message(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}
	grantType, err := domain.ParseGrantType(*req.GrantType)
	if err != nil {
		a.message(w, http.StatusBadRequest, err.Error())
		return
	}
	funding := &domain.Funding{
		CategoryID:          *req.CategoryID,
		GrantName:           *req.GrantName,
		GrantType:           grantType,
		Amount:              *req.Amount,
		Description:         req.Description,
		EligibilityCriteria: req.EligibilityCriteria,
	}
	if err := a.Fundings.Create(r.Context(), funding); err != nil {
		a.internal(w, r, err)
		return
	}
	a.created(w, funding.ID, "Funding created successfully")
}

func (a *App) FundingsList(w http.ResponseWriter, r *http.Request) {
	fundings, err := a.Fundings.List(r.Context())
	if err != nil {
		a.internal(w, r, err)
		return
	}
	items := make([]fundingDTO, 0, len(fundings))
	for i := range fundings {
		items = append(items, toFundingDTO(&fundings[i]))
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) FundingsGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Funding")
		return
	}
	funding, err := a.Fundings.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Funding")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.json(w, http.StatusOK, toFundingDTO(funding))
}

func (a *App) FundingsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Funding")
		return
	}
	funding, err := a.Fundings.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Funding")
			return
		}
		a.internal(w, r, err)
		return
	}

	var req fundingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.GrantType != nil {
		grantType, err := domain.ParseGrantType(*req.GrantType)
		if err != nil {
			a.message(w, http.StatusBadRequest, err.Error())
			return
		}
		funding.GrantType = grantType
	}
	if req.CategoryID != nil {
		funding.CategoryID = *req.CategoryID
	}
	if req.GrantName != nil {
		funding.GrantName = *req.GrantName
	}
	if req.Amount != nil {
		funding.Amount = *req.Amount
	}
	if req.Description != nil {
		funding.Description = req.Description
	}
	if req.EligibilityCriteria != nil {
		funding.EligibilityCriteria = req.EligibilityCriteria
	}

	if err := a.Fundings.Update(r.Context(), funding); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Funding")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Funding updated successfully")
}

func (a *App) FundingsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Funding")
		return
	}
	if err := a.Fundings.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Funding")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Funding deleted successfully")
}
