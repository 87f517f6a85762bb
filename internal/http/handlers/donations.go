package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/domain"
)

// donationDateLayout is the fixed rendering for donation timestamps.
const donationDateLayout = "2006-01-02 15:04:05"

type donationDTO struct {
	DonationID       int64   `json:"donation_id"`
	UserID           *int64  `json:"user_id"`
	DonationType     string  `json:"donation_type"`
	Name             *string `json:"name"`
	OrganisationName *string `json:"organisation_name"`
	Amount           int64   `json:"amount"`
	PaymentMethod    string  `json:"payment_method"`
	DonationDate     string  `json:"donation_date"`
}

func toDonationDTO(d *domain.Donation) donationDTO {
	return donationDTO{
		DonationID:       d.DonationID,
		UserID:           d.UserID,
		DonationType:     string(d.DonationType),
		Name:             d.Name,
		OrganisationName: d.OrganisationName,
		Amount:           d.Amount,
		PaymentMethod:    string(d.PaymentMethod),
		DonationDate:     d.DonationDate.Format(donationDateLayout),
	}
}

// donation_date is deliberately absent: the write time always wins.
type donationRequest struct {
	UserID           *int64  `json:"user_id"`
	DonationType     *string `json:"donation_type"`
	Name             *string `json:"name"`
	OrganisationName *string `json:"organisation_name"`
	Amount           *int64  `json:"amount"`
	PaymentMethod    *string `json:"payment_method"`
}

func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Amount == nil || req.DonationType == nil || req.PaymentMethod == nil {
		a.message(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}
	donationType, err := domain.ParseDonationType(*req.DonationType)
	if err != nil {
		a.message(w, http.StatusBadRequest, err.Error())
		return
	}
	paymentMethod, err := domain.ParsePaymentMethod(*req.PaymentMethod)
	if err != nil {
		a.message(w, http.StatusBadRequest, err.Error())
		return
	}
	donation := &domain.Donation{
		UserID:           req.UserID,
		DonationType:     donationType,
		Name:             req.Name,
		OrganisationName: req.OrganisationName,
		Amount:           *req.Amount,
		PaymentMethod:    paymentMethod,
	}
	if err := a.Donations.Create(r.Context(), donation); err != nil {
		a.internal(w, r, err)
		return
	}
	a.created(w, donation.DonationID, "Donation created successfully")
}

func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Donations.List(r.Context())
	if err != nil {
		a.internal(w, r, err)
		return
	}
	items := make([]donationDTO, 0, len(donations))
	for i := range donations {
		items = append(items, toDonationDTO(&donations[i]))
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) DonationsGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Donation")
		return
	}
	donation, err := a.Donations.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Donation")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.json(w, http.StatusOK, toDonationDTO(donation))
}

func (a *App) DonationsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Donation")
		return
	}
	donation, err := a.Donations.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Donation")
			return
		}
		a.internal(w, r, err)
		return
	}

	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.DonationType != nil {
		donationType, err := domain.ParseDonationType(*req.DonationType)
		if err != nil {
			a.message(w, http.StatusBadRequest, err.Error())
			return
		}
		donation.DonationType = donationType
	}
	if req.PaymentMethod != nil {
		paymentMethod, err := domain.ParsePaymentMethod(*req.PaymentMethod)
		if err != nil {
			a.message(w, http.StatusBadRequest, err.Error())
			return
		}
		donation.PaymentMethod = paymentMethod
	}
	if req.UserID != nil {
		donation.UserID = req.UserID
	}
	if req.Name != nil {
		donation.Name = req.Name
	}
	if req.OrganisationName != nil {
		donation.OrganisationName = req.OrganisationName
	}
	if req.Amount != nil {
		donation.Amount = *req.Amount
	}

	if err := a.Donations.Update(r.Context(), donation); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Donation")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Donation updated successfully")
}

func (a *App) DonationsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.notFound(w, "Donation")
		return
	}
	if err := a.Donations.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.notFound(w, "Donation")
			return
		}
		a.internal(w, r, err)
		return
	}
	a.message(w, http.StatusOK, "Donation deleted successfully")
}
