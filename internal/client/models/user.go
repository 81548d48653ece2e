// Package models defines the data types exchanged with the recipe service.
package models

// Identity is the authenticated user's profile as reported by the backend.
// A nil *Identity means the client is in the guest state.
type Identity struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DisplayName returns the name to show in the UI, falling back to the
// email address when the profile has no name.
func (i *Identity) DisplayName() string {
	if i == nil {
		return ""
	}
	if i.Name != "" {
		return i.Name
	}
	return i.Email
}
