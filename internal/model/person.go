// Package model defines domain entities for the application.
package model

import "time"

// Person represents a quoted individual's profile.
type Person struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}
