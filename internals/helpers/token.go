// file: internals/helpers/token.go
package helper

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ==========================
   Token extraction
========================== */

// GetRawAccessToken returns the bearer token from the Authorization header,
// falling back to the access_token cookie.
func GetRawAccessToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(auth, "Bearer ") {
		if tok := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")); tok != "" {
			return tok
		}
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

// GetRefreshTokenFromCookie reads the refresh_token cookie, empty when absent.
func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies("refresh_token"))
}

/* ==========================
   CSRF double-submit
========================== */

// CheckCSRFCookieHeader enforces the double-submit pattern: the csrf_token
// cookie must match the X-CSRF-Token header. Only call this on flows that
// authenticated via cookies.
func CheckCSRFCookieHeader(c *fiber.Ctx) error {
	cookie := strings.TrimSpace(c.Cookies("csrf_token"))
	header := strings.TrimSpace(c.Get("X-CSRF-Token"))
	if cookie == "" || header == "" {
		return fiber.NewError(fiber.StatusForbidden, "CSRF token missing")
	}
	if subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) != 1 {
		return fiber.NewError(fiber.StatusForbidden, "CSRF token mismatch")
	}
	return nil
}
