package dto

// LoginRequest is the credential pair presented at login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the public view of an admin credential.
type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse returns a signed session token with its subject.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterAdminRequest creates a new admin credential.
type RegisterAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
