// Package domain defines the records and errors shared by the signup service.
package domain

import "errors"

var (
	// ErrActivityNotFound is returned when an activity name is absent from the registry.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered is returned when a signup repeats an email already on the list.
	ErrAlreadyRegistered = errors.New("participant already registered")
	// ErrNotRegistered is returned when an unregister names an email not on the list.
	ErrNotRegistered = errors.New("participant not registered")
)

// Activity describes one extracurricular offering. The JSON keys are the
// wire format served to clients.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}
