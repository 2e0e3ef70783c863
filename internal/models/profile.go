package models

// UserProfile is a user account record. Email is a secondary lookup key;
// uniqueness is not enforced at this layer.
type UserProfile struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
