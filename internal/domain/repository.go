package domain

import "context"

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository defines persistence for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id int64) error
}

// EmploymentRepository defines persistence for job postings.
type EmploymentRepository interface {
	Create(ctx context.Context, employment *Employment) error
	List(ctx context.Context) ([]Employment, error)
	ListByUser(ctx context.Context, userID int64) ([]Employment, error)
	GetByID(ctx context.Context, id int64) (*Employment, error)
	Update(ctx context.Context, employment *Employment) error
	Delete(ctx context.Context, id int64) error
}

// ApplicationRepository defines persistence for employment applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *Application) error
	List(ctx context.Context) ([]Application, error)
	ListByUser(ctx context.Context, userID int64) ([]Application, error)
	GetByID(ctx context.Context, id int64) (*Application, error)
	Update(ctx context.Context, application *Application) error
	Delete(ctx context.Context, id int64) error
}

// SocialIntegrationRepository defines persistence for association listings.
type SocialIntegrationRepository interface {
	Create(ctx context.Context, integration *SocialIntegration) error
	List(ctx context.Context) ([]SocialIntegration, error)
	ListByUser(ctx context.Context, userID int64) ([]SocialIntegration, error)
	GetByID(ctx context.Context, id int64) (*SocialIntegration, error)
	Update(ctx context.Context, integration *SocialIntegration) error
	Delete(ctx context.Context, id int64) error
}

// FundingRepository defines persistence for grant offerings.
type FundingRepository interface {
	Create(ctx context.Context, funding *Funding) error
	List(ctx context.Context) ([]Funding, error)
	GetByID(ctx context.Context, id int64) (*Funding, error)
	Update(ctx context.Context, funding *Funding) error
	Delete(ctx context.Context, id int64) error
}

// FundingApplicationRepository defines persistence for grant applications.
type FundingApplicationRepository interface {
	Create(ctx context.Context, application *FundingApplication) error
	List(ctx context.Context) ([]FundingApplication, error)
	ListByUser(ctx context.Context, userID int64) ([]FundingApplication, error)
	GetByID(ctx context.Context, id int64) (*FundingApplication, error)
	Update(ctx context.Context, application *FundingApplication) error
	Delete(ctx context.Context, id int64) error
}

// DonationRepository defines persistence for donations.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	List(ctx context.Context) ([]Donation, error)
	ListByUser(ctx context.Context, userID int64) ([]Donation, error)
	GetByID(ctx context.Context, id int64) (*Donation, error)
	Update(ctx context.Context, donation *Donation) error
	Delete(ctx context.Context, id int64) error
}
