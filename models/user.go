package models

import "time"

// User is the record kept in a session slot after a successful login.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	LoggedInAt time.Time `json:"loggedInAt"`
}
