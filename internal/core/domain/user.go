package domain

const (
	RolePatient    = "patient"
	RoleSpecialist = "specialist"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Identity is the principal record owned by the external identity backend.
// Only the attributes this service consumes are modeled.
type Identity struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	Status       string         `json:"status"`
	AppMetadata  map[string]any `json:"app_metadata,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

// MetadataRole resolves the identity's role, preferring backend-assigned
// app metadata over user-editable signup metadata. User metadata is written
// by the client at signup time, so it must never win when both are present.
func (i *Identity) MetadataRole() string {
	if r, ok := i.AppMetadata["role"].(string); ok && r != "" {
		return r
	}
	if r, ok := i.UserMetadata["role"].(string); ok && r != "" {
		return r
	}
	return i.Role
}

// Session is the token material issued by the identity backend on signup
// and login.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// Profile is the row stored alongside each Identity, keyed by the identity id.
type Profile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Rut        string `json:"rut"`
	FirstNames string `json:"first_names"`
	LastNames  string `json:"last_names"`
	Role       string `json:"role"`
	Status     string `json:"status"`
}

// Principal is the authenticated caller attached to a request after the
// session gate resolves a bearer token.
type Principal struct {
	ID     string
	Email  string
	Role   string
	Status string
}
