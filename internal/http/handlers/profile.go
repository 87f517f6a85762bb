package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
)

// profileEmptyPlaceholder stands in for empty collections in the profile
// response. Legacy clients expect this string instead of an empty list.
const profileEmptyPlaceholder = "No records found"

// Profile returns a user's base fields together with every related
// collection, each rendered the same way the per-entity list endpoints do.
func (a *App) Profile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
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

	employments, err := a.Employments.ListByUser(r.Context(), id)
	if err != nil {
		a.internal(w, r, err)
		return
	}
	applications, err := a.Applications.ListByUser(r.Context(), id)
	if err != nil {
		a.internal(w, r, err)
		return
	}
	integrations, err := a.SocialIntegrations.ListByUser(r.Context(), id)
	if err != nil {
		a.internal(w, r, err)
		return
	}
	fundingApplications, err := a.FundingApplications.ListByUser(r.Context(), id)
	if err != nil {
		a.internal(w, r, err)
		return
	}
	donations, err := a.Donations.ListByUser(r.Context(), id)
	if err != nil {
		a.internal(w, r, err)
		return
	}

	employmentDTOs := make([]employmentDTO, 0, len(employments))
	for i := range employments {
		employmentDTOs = append(employmentDTOs, toEmploymentDTO(&employments[i]))
	}
	applicationDTOs := make([]applicationDTO, 0, len(applications))
	for i := range applications {
		applicationDTOs = append(applicationDTOs, toApplicationDTO(&applications[i]))
	}
	integrationDTOs := make([]socialIntegrationDTO, 0, len(integrations))
	for i := range integrations {
		integrationDTOs = append(integrationDTOs, toSocialIntegrationDTO(&integrations[i]))
	}
	fundingApplicationDTOs := make([]fundingApplicationDTO, 0, len(fundingApplications))
	for i := range fundingApplications {
		fundingApplicationDTOs = append(fundingApplicationDTOs, toFundingApplicationDTO(&fundingApplications[i]))
	}
	donationDTOs := make([]donationDTO, 0, len(donations))
	for i := range donations {
		donationDTOs = append(donationDTOs, toDonationDTO(&donations[i]))
	}

	a.json(w, http.StatusOK, map[string]any{
		"id":                   user.ID,
		"username":             user.Username,
		"email":                user.Email,
		"first_name":           user.FirstName,
		"last_name":            user.LastName,
		"profile_picture":      user.ProfilePicture,
		"employments":          collectionOrPlaceholder(employmentDTOs),
		"applications":         collectionOrPlaceholder(applicationDTOs),
		"social_integrations":  collectionOrPlaceholder(integrationDTOs),
		"funding_applications": collectionOrPlaceholder(fundingApplicationDTOs),
		"donations":            collectionOrPlaceholder(donationDTOs),
	})
}

func collectionOrPlaceholder[T any](items []T) any {
	if len(items) == 0 {
		return profileEmptyPlaceholder
	}
	return items
}
