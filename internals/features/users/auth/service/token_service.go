package service

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "vahanhub_backend/internals/features/users/auth/repository"
	helper "vahanhub_backend/internals/helpers"
)

/* ==========================
   REFRESH TOKEN (rotation)
========================== */

// RefreshToken validates the refresh cookie, rotates the stored hash and
// re-issues both tokens. Body fallback `{"refresh_token": "..."}` is kept
// for mobile clients that cannot use cookies.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	raw := helper.GetRefreshTokenFromCookie(c)
	fromCookie := raw != ""
	if !fromCookie {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&body); err == nil {
			raw = strings.TrimSpace(body.RefreshToken)
		}
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	// cookie flow needs the CSRF double-submit pair
	if fromCookie {
		if err := helper.CheckCSRFCookieHeader(c); err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		}
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired refresh token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "refresh" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token type")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token subject")
	}

	// the stored hash must still exist and be unrevoked
	oldHash := computeRefreshHash(raw, refreshSecret)
	exists, err := authRepo.RefreshTokenHashExists(db, oldHash)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify refresh token")
	}
	if !exists {
		// replay of a rotated token: revoke the whole family
		if err := authRepo.RevokeAllRefreshTokensForUser(db, userID); err != nil {
			log.Printf("[WARN] Failed to revoke token family for %s: %v", userID, err)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token no longer valid")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account disabled. Contact your admin.")
	}

	// rotate: drop the old hash before issuing the replacement
	if err := authRepo.DeleteRefreshTokenByHash(db, oldHash); err != nil {
		log.Printf("[WARN] Failed to delete rotated refresh token: %v", err)
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   CSRF seed
========================== */

// IssueCSRFToken sets the csrf_token cookie and returns the value so the
// SPA can mirror it in the X-CSRF-Token header on cookie-auth requests.
func IssueCSRFToken(c *fiber.Ctx) error {
	token := randomString(32)
	setXSRFCookie(c, token, nowUTC().Add(24*time.Hour))
	return helper.JsonOK(c, "CSRF token issued", fiber.Map{"csrf_token": token})
}
