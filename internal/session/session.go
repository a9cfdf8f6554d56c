package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vergerducoin/verger-clients/internal/state"
	"github.com/vergerducoin/verger-clients/pkg/logger"
	"github.com/vergerducoin/verger-clients/pkg/types"
)

type document struct {
	Token   string             `json:"token,omitempty"`
	Profile *types.UserProfile `json:"profile,omitempty"`
}

// Session holds the bearer credential and user profile for the current
// operator or shopper. It is authenticated exactly when both are present;
// expiry is enforced server-side and any 401 from the remote API clears it.
type Session struct {
	mu      sync.Mutex
	store   state.Store
	logg    *logger.Logger
	token   string
	profile *types.UserProfile
}

// New restores the session from the state store. A missing or unreadable
// document yields an anonymous session.
func New(ctx context.Context, store state.Store, logg *logger.Logger) (*Session, error) {
	if store == nil {
		return nil, fmt.Errorf("state store is required")
	}

	s := &Session{store: store, logg: logg}

	data, err := store.Load(ctx, state.AuthDocument)
	switch {
	case errors.Is(err, state.ErrNotFound):
		return s, nil
	case err != nil:
		if logg != nil {
			logg.Warn(logg.WithField(ctx, "document", state.AuthDocument), "failed to restore session, starting anonymous")
		}
		return s, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		if logg != nil {
			logg.Warn(logg.WithField(ctx, "document", state.AuthDocument), "corrupt session document, starting anonymous")
		}
		return s, nil
	}

	if doc.Token != "" && doc.Profile != nil {
		s.token = doc.Token
		s.profile = doc.Profile
	}
	return s, nil
}

// Login unconditionally replaces the session state.
func (s *Session) Login(ctx context.Context, profile types.UserProfile, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.profile = &profile
	s.persist(ctx)
}

// Logout clears credential and profile.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked(ctx)
}

// Invalidate clears the session after the gateway observed an
// authorization failure from the remote API.
func (s *Session) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" && s.profile == nil {
		return
	}
	if s.logg != nil {
		s.logg.Warn(ctx, "session invalidated by remote authorization failure")
	}
	s.clearLocked(ctx)
}

func (s *Session) clearLocked(ctx context.Context) {
	s.token = ""
	s.profile = nil
	s.persist(ctx)
}

// UpdateProfile merges the patch into the current profile. On an
// unauthenticated session this is a silent no-op.
func (s *Session) UpdateProfile(ctx context.Context, patch types.ProfilePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticatedLocked() {
		return
	}
	updated := patch.Apply(*s.profile)
	s.profile = &updated
	s.persist(ctx)
}

// IsAuthenticated reports whether both credential and profile are present.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticatedLocked()
}

func (s *Session) authenticatedLocked() bool {
	return s.token != "" && s.profile != nil
}

// IsStaff reports whether the profile carries the staff or superuser flag.
func (s *Session) IsStaff() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticatedLocked() {
		return false
	}
	return s.profile.IsStaff || s.profile.IsSuperuser
}

// HasRole reports whether the profile's role matches. Staff satisfies
// every role check; that asymmetry is deliberate and relied on by the
// role-gated views.
func (s *Session) HasRole(role string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticatedLocked() {
		return false
	}
	if s.profile.IsStaff || s.profile.IsSuperuser {
		return true
	}
	return s.profile.Role == role
}

// Token returns the opaque bearer credential, empty when anonymous.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Profile returns a copy of the current profile.
func (s *Session) Profile() (types.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return types.UserProfile{}, false
	}
	return *s.profile, true
}

// Expiry extracts the exp claim from the bearer token for display. The
// signature is not verified; the backend remains the authority and a 401
// is what actually invalidates the session.
func (s *Session) Expiry() (time.Time, bool) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// persist writes the session through to the state store. Callers hold the
// lock. Errors are logged and swallowed.
func (s *Session) persist(ctx context.Context) {
	data, err := json.Marshal(document{Token: s.token, Profile: s.profile})
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "failed to encode session document", err)
		}
		return
	}
	if err := s.store.Save(ctx, state.AuthDocument, data); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "failed to persist session document", err)
		}
	}
}
