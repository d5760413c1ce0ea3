package model

// RoleAdmin is the only role handed out by the login flow.
const RoleAdmin = "Admin"

// User is the signed-in portal user.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Employee is a row of the user management roster.
type Employee struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Active     bool   `json:"active"`
}
