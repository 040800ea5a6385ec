package models

// UserDetails is the masked field set returned after signup and login.
// It deliberately has no password field.
type UserDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Age   int    `json:"age"`
}

// UserDetailsResponse nests the masked fields under the userDetails key.
type UserDetailsResponse struct {
	UserDetails UserDetails `json:"userDetails"`
}
