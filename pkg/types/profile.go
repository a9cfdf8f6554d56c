package types

// UserProfile is the authenticated identity held by the client session.
// Staff and superuser flags gate the role-specific views.
type UserProfile struct {
	ID          int64  `json:"id"`
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Role        string `json:"role,omitempty"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
	CustomerID  int64  `json:"customer_id,omitempty"`
}

// ProfilePatch merges partial updates into an existing profile.
type ProfilePatch struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Role      *string `json:"role,omitempty"`
}

// Apply folds non-nil patch fields into the profile.
func (p ProfilePatch) Apply(profile UserProfile) UserProfile {
	if p.Username != nil {
		profile.Username = *p.Username
	}
	if p.Email != nil {
		profile.Email = *p.Email
	}
	if p.FirstName != nil {
		profile.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		profile.LastName = *p.LastName
	}
	if p.Role != nil {
		profile.Role = *p.Role
	}
	return profile
}

// TokenResponse is the payload returned by POST /auth/token/.
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}
