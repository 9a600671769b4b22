package model

import "time"

// DefaultClosedMessage is shown on the public form while submissions are closed.
const DefaultClosedMessage = "Staff applications are currently closed. Please check back later."

// Settings is the singleton record controlling whether the public application
// form accepts submissions. Exactly one instance exists; the read path creates
// it with defaults on first access.
type Settings struct {
	IsOpen        bool      `json:"isOpen"`
	ClosedMessage string    `json:"closedMessage"`
	UpdatedAt     time.Time `json:"-"`
}

// DefaultSettings returns the state a fresh installation starts in.
func DefaultSettings() Settings {
	return Settings{
		IsOpen:        true,
		ClosedMessage: DefaultClosedMessage,
	}
}

// UpdateSettingsRequest is the partial settings patch.
type UpdateSettingsRequest struct {
	IsOpen        *bool   `json:"isOpen,omitempty"`
	ClosedMessage *string `json:"closedMessage,omitempty"`
}

// Validate checks the patch shape.
func (r *UpdateSettingsRequest) Validate() []FieldError {
	if r.IsOpen == nil && r.ClosedMessage == nil {
		return []FieldError{{Field: "isOpen", Message: "at least one of isOpen or closedMessage is required"}}
	}
	return nil
}
