package domain

// Category groups employments, social integrations and fundings. UserID is
// the creator and may be absent for seeded categories.
type Category struct {
	ID          int64
	Name        string
	Description *string
	UserID      *int64
}
