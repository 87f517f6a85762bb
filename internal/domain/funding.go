package domain

import "fmt"

// GrantType enumerates the sources a grant can come from.
type GrantType string

const (
	GrantTypeGovernment    GrantType = "government"
	GrantTypeNGO           GrantType = "ngo"
	GrantTypeCorporate     GrantType = "corporate"
	GrantTypeInternational GrantType = "international"
)

// ParseGrantType decodes a grant type string, rejecting unknown values.
func ParseGrantType(s string) (GrantType, error) {
	switch GrantType(s) {
	case GrantTypeGovernment, GrantTypeNGO, GrantTypeCorporate, GrantTypeInternational:
		return GrantType(s), nil
	}
	return "", fmt.Errorf("%w: %q is not a valid grant type", ErrInvalidEnum, s)
}

// Funding is a grant offering attached to a category.
type Funding struct {
	ID                  int64
	CategoryID          int64
	GrantName           string
	GrantType           GrantType
	Amount              int64
	Description         *string
	EligibilityCriteria *string
}
