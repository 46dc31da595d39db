package dto

// ProfileResponse is the public view of a user account.
type ProfileResponse struct {
	ID             uint     `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	FirstName      *string  `json:"firstName"`
	LastName       *string  `json:"lastName"`
	Phone          *string  `json:"phone"`
	Bio            *string  `json:"bio"`
	ProfilePicture *string  `json:"profilePicture"`
	Roles          []string `json:"roles"`
}

// UpdateProfileRequest applies a partial profile edit: only non-nil fields
// are written.
type UpdateProfileRequest struct {
	Email          *string `json:"email"          validate:"omitempty,email"`
	FirstName      *string `json:"firstName"      validate:"omitempty,max=100"`
	LastName       *string `json:"lastName"       validate:"omitempty,max=100"`
	Phone          *string `json:"phone"          validate:"omitempty,max=30"`
	Bio            *string `json:"bio"            validate:"omitempty,max=500"`
	ProfilePicture *string `json:"profilePicture" validate:"omitempty,max=500"`
}

// ChangePasswordRequest verifies the current password before setting the new.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
}
