package entity

import "time"

// User is the core identity entity. Emails are unique case-insensitively
// among login candidates; the email itself is the entire credential model.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	LastLogin time.Time `json:"lastLogin"`
	Avatar    string    `json:"avatar"`
}
