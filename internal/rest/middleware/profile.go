package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ProfileHeader = "X-Profile-ID"
	ProfileKey    = "profile_id"

	profileCookieMaxAge = 365 * 24 * 60 * 60
)

// Profile identifies the visitor. A valid X-Profile-ID header wins over the
// cookie; a visitor with neither gets a new id and a cookie for it.
func Profile(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseProfile(c.GetHeader(ProfileHeader))
		if !ok {
			raw, err := c.Cookie(cookieName)
			if err == nil {
				id, ok = parseProfile(raw)
			}
		}
		if !ok {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, id, profileCookieMaxAge, "/", "", false, true)
		}

		c.Set(ProfileKey, id)
		c.Header(ProfileHeader, id)
		c.Next()
	}
}

func parseProfile(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
