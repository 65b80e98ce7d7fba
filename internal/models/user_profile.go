package models

// UserProfile holds the display name for an identity. Profiles are optional:
// peer ranking falls back to the local part of the identity when no profile
// exists.
type UserProfile struct {
	Base
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`
}
