package dto

// LoginRequest carries the login form.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// RegisterRequest carries the registration form.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type"` // always "Bearer"
	Username string `json:"username"`
}
