package model

import "time"

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User is an account with profile fields and a role set. Responses go out
// through dto.ProfileResponse; the json tags here are a second line of
// defense so the hash never serializes by accident.
type User struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	Username       string   `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email          string   `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash   string   `gorm:"not null" json:"-"`
	FirstName      *string  `gorm:"size:50" json:"firstName"`
	LastName       *string  `gorm:"size:50" json:"lastName"`
	Phone          *string  `gorm:"size:20" json:"phone"`
	Bio            *string  `gorm:"type:text" json:"bio"`
	ProfilePicture *string  `gorm:"type:text" json:"profilePicture"`
	Roles          []string `gorm:"serializer:json" json:"roles"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

// HasRole reports whether the user carries the given role.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
