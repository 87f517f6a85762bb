package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/domain"
)

type fundingApplicationDTO struct {
	ID                  int64   `json:"id"`
	UserID              int64   `json:"user_id"`
	FundingID           int64   `json:"funding_id"`
	Status              string  `json:"status"`
	ApplicationType     string  `json:"application_type"`
	SupportingDocuments *string `json:"supporting_documents"`
	HouseholdIncome     *int64  `json:"household_income"`
	NumberOfDependents  *int64  `json:"number_of_dependents"`
	ReasonForAid        *string `json:"reason_for_aid"`
	ConceptNote         *string `json:"concept_note"`
	BusinessProfile     *string `json:"business_profile"`
}

func toFundingApplicationDTO(fa *domain.FundingApplication) fundingApplicationDTO {
	return fundingApplicationDTO{
		ID:                  fa.ID,
		UserID:              fa.UserID,
		FundingID:           fa.FundingID,
		Status:              string(fa.Status),
		ApplicationType:     string(fa.ApplicationType),
		SupportingDocuments: fa.SupportingDocuments,
		HouseholdIncome:     fa.HouseholdIncome,
		NumberOfDependents:  fa.NumberOfDependents,
		ReasonForAid:        fa.ReasonForAid,
		ConceptNote:         fa.ConceptNote,
		BusinessProfile:     fa.BusinessProfile,
	}
}

type fundingApplicationRequest struct {
	UserID              *int64  `json:"user_id"`
	FundingID           *int64  `json:"funding_id"`
	Status              *string `json:"status"`
	ApplicationType     *string `json:"application_type"`
	SupportingDocuments *string `json:"supporting_documents"`
	HouseholdIncome     *int64  `json:"household_income"`
	NumberOfDependents  *int64  `json:"number_of_dependents"`
	ReasonForAid        *string `json:"reason_for_aid"`
	ConceptNote         *string `json:"concept_note"`
	BusinessProfile     *string `json:"business_profile"`
}

func (a *App) FundingApplicationsCreate(w http.ResponseWriter, r *http.Request) {
	var req fundingApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.UserID == nil || req.FundingID == nil || req.Status == nil || req.ApplicationType == nil {
		a.message(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}
	status, err := domain.ParseApplicationStatus(*req.Status)
	if err != nil {
		a.message(w, http.StatusBadRequest, err.Error())
		return
	}
	applicationType, err := domain.ParseApplicationType(*req.ApplicationType)
	if err != nil {
		a.message(w, http.StatusBadRequest, err.Error())
		return
	}
	application := &domain.FundingApplication{
		UserID:              *req.UserID,
		FundingID:           *req.FundingID,
		Status:              status,
		ApplicationType:     applicationType,
		SupportingDocuments: req.SupportingDocuments,
		HouseholdIncome:     req.HouseholdIncome,
		NumberOfDependents:  req.NumberOfDependents,
		ReasonForAid:        req.ReasonForAid,
		ConceptNote:         req.ConceptNote,
		BusinessProfile:     req.BusinessProfile,
	}
	if err := a.FundingApplications.Create(r.Context(), application); err != nil {
		a.internal(w, r, err)
		return
	}
	a.created(w, application.ID, "Funding application created successfully")
}

func (a *App) FundingApplicationsList(w http.ResponseWriter, r *http.Request) {
	applications, err := a.FundingApplications.List(r.Context())
	if err != nil {
		a.internal(w, r, err)
		return
	}
	items := make([]fundingApplicationDTO, 0, len(applications))
	for i := range applications {
		items = append(items, toFundingApplicationDTO(&applications[i]))
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) FundingApplicationsGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Funding application")
		return
	}
	application, err := a.FundingApplications.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Funding application")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.json(w, http.StatusOK, toFundingApplicationDTO(application))
}

func (a *App) FundingApplicationsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Funding application")
		return
	}
	application, err := a.FundingApplications.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Funding application")
			return
		}
		a.internal(w, r, err)
		return
	}

	var req fundingApplicationRequest
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
	if req.ApplicationType != nil {
		applicationType, err := domain.ParseApplicationType(*req.ApplicationType)
		if err != nil {
			a.message(w, http.StatusBadRequest, err.Error())
			return
		}
		application.ApplicationType = applicationType
	}
	if req.UserID != nil {
		application.UserID = *req.UserID
	}
	if req.FundingID != nil {
		application.FundingID = *req.FundingID
	}
	if req.SupportingDocuments != nil {
		application.SupportingDocuments = req.SupportingDocuments
	}
	if req.HouseholdIncome != nil {
		application.HouseholdIncome = req.HouseholdIncome
	}
	if req.NumberOfDependents != nil {
		application.NumberOfDependents = req.NumberOfDependents
	}
	if req.ReasonForAid != nil {
		application.ReasonForAid = req.ReasonForAid
	}
	if req.ConceptNote != nil {
		application.ConceptNote = req.ConceptNote
	}
	if req.BusinessProfile != nil {
		application.BusinessProfile = req.BusinessProfile
	}

	if err := a.FundingApplications.Update(r.Context(), application); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Funding application")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Funding application updated successfully")
}

func (a *App) FundingApplicationsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Funding application")
		return
	}
	if err := a.FundingApplications.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Funding application")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Funding application deleted successfully")
}
