package model

// User is an account managed through the admin dashboard.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	DOB   string `json:"dob"`
	Role  string `json:"role"`
}

// RegisterInput is the payload for creating a user.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	DOB      string `json:"dob"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// UserUpdate is the payload for editing a user. Password is optional; the
// backend keeps the existing one when it is empty.
type UserUpdate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	DOB      string `json:"dob"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

// Analysis is the dashboard overview aggregate.
type Analysis struct {
	TotalUsers    int `json:"total_users"`
	TotalAuctions int `json:"total_auctions"`
}
