package domain

// User represents a registered account on the platform. Password holds the
// PBKDF2 hash, never the plaintext.
type User struct {
	ID             int64
	Username       string
	Email          string
	Password       string
	FirstName      *string
	LastName       *string
	ProfilePicture *string
}
