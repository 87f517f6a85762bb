package domain

// SocialIntegration links a user to an external association under a category.
type SocialIntegration struct {
	ID              int64
	UserID          int64
	CategoryID      int64
	AssociationName string
	Description     string
	Interested      bool
	Saved           bool
}
