package session

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vergerducoin/verger-clients/pkg/types"
)

// ProfileFromToken extracts identity claims the backend embeds in its
// access tokens. The signature is not checked; the profile is display
// state only and every privileged call is re-authorized remotely.
func ProfileFromToken(token, username string) types.UserProfile {
	profile := types.UserProfile{Username: username}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return profile
	}

	if id, ok := claimInt64(claims, "user_id"); ok {
		profile.ID = id
	}
	if v, ok := claims["username"].(string); ok && v != "" {
		profile.Username = v
	}
	if v, ok := claims["email"].(string); ok {
		profile.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		profile.Role = v
	}
	if v, ok := claims["is_staff"].(bool); ok {
		profile.IsStaff = v
	}
	if v, ok := claims["is_superuser"].(bool); ok {
		profile.IsSuperuser = v
	}
	return profile
}

func claimInt64(claims jwt.MapClaims, key string) (int64, bool) {
	switch v := claims[key].(type) {
	case float64:
		return int64(v), true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}
