package domain

import "time"

// ContactSubmission is one contact-form entry. Phone is optional.
type ContactSubmission struct {
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"timestamp" bson:"timestamp"`
}

// Subscriber holds a normalized (trimmed, lowercased) newsletter email.
type Subscriber struct {
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"timestamp" bson:"timestamp"`
}
