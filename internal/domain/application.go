package domain

import "fmt"

// ApplicationStatus enumerates the review states of an application. The same
// vocabulary is used for employment and funding applications.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ParseApplicationStatus decodes a status string, rejecting unknown values.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return ApplicationStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q is not a valid status", ErrInvalidEnum, s)
}

// Application is a user's submission against an employment posting.
type Application struct {
	ID           int64
	UserID       int64
	EmploymentID int64
	Status       ApplicationStatus
	Name         string
	PhoneNumber  string
	Email        string
	CoverLetter  string
	Resume       string
	Linkedin     string
	Portfolio    string
}
