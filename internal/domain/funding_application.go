package domain

import "fmt"

// ApplicationType distinguishes individual aid requests from business grants.
type ApplicationType string

const (
	ApplicationTypeIndividual ApplicationType = "individual"
	ApplicationTypeBusiness   ApplicationType = "business"
)

// ParseApplicationType decodes an application type string, rejecting unknown values.
func ParseApplicationType(s string) (ApplicationType, error) {
	switch ApplicationType(s) {
	case ApplicationTypeIndividual, ApplicationTypeBusiness:
		return ApplicationType(s), nil
	}
	return "", fmt.Errorf("%w: %q is not a valid application type", ErrInvalidEnum, s)
}

// FundingApplication is a user's application against a grant offering.
// Household fields apply to individual requests, concept note and business
// profile to business ones; none of that is enforced beyond presence rules.
type FundingApplication struct {
	ID                  int64
	UserID              int64
	FundingID           int64
	Status              ApplicationStatus
	ApplicationType     ApplicationType
	SupportingDocuments *string
	HouseholdIncome     *int64
	NumberOfDependents  *int64
	ReasonForAid        *string
	ConceptNote         *string
	BusinessProfile     *string
}
