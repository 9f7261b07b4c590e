package domain

import "time"

// ContactMessage is a contact-form submission captured from the public site.
type ContactMessage struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
