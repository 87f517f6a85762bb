package domain

// Employment is a job posting created by a user within a category.
type Employment struct {
	ID           int64
	UserID       int64
	CategoryID   int64
	Title        string
	Description  string
	Requirements *string
	Location     *string
	SalaryRange  *int64
}
