package credstore

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reports the expiry claim of a stored credential. The
// token is parsed without verification: expiry display is informational
// only, and the service stays the authority on validity. Returns false
// for opaque tokens or tokens without an exp claim.
func TokenExpiry(token string) (time.Time, bool) {
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
