package models

// AppUser matches the app_user table. The hash never leaves the server.
type AppUser struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
}

// UserProfile is the login response payload: the user minus the hash.
type UserProfile struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Profile strips the user down to what login is allowed to return.
func (u *AppUser) Profile() UserProfile {
	return UserProfile{
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
	}
}

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
