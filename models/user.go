package models

// User represents the authenticated account as the remote API returns it.
// The client holds a read-through copy; the server owns the authoritative record.
type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Role      string `json:"role"` // "user" or "admin"
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body for POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the payload returned by login and signup.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// UpdateProfileRequest is the body for PUT /users/profile.
// Empty fields are omitted so the server keeps their current values.
type UpdateProfileRequest struct {
	Name   string `json:"name,omitempty"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// UpdatePasswordRequest is the body for PUT /users/password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
