package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vahanhub_backend/internals/configs"
	authHelper "vahanhub_backend/internals/features/users/auth/helper"
	authModel "vahanhub_backend/internals/features/users/auth/model"
	authRepo "vahanhub_backend/internals/features/users/auth/repository"
	userModel "vahanhub_backend/internals/features/users/user/model"
	helper "vahanhub_backend/internals/helpers"
)

/* ==========================
   Const & small helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func randomString(n int) string {
	b := make([]byte, (n+1)/2)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)[:n]
}

// tenantTypeOf resolves the tenant's type string for the token claim.
func tenantTypeOf(db *gorm.DB, tenantID *uuid.UUID) string {
	if tenantID == nil {
		return ""
	}
	var tt string
	_ = db.Raw(`SELECT tenant_type FROM tenants WHERE tenant_id = ? AND tenant_deleted_at IS NULL`, *tenantID).
		Scan(&tt).Error
	return tt
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input userModel.UserModel
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// self-registration never picks its own role or tenant
	input.Role = "user"
	input.TenantID = nil
	input.IsActive = true

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	input.Password = passwordHash

	if err := authRepo.CreateUser(db, &input); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email or username already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Registration successful", nil)
}

/* ==========================
   LOGIN (username/email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := authHelper.ValidateLoginInput(input.Identifier, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, input.Identifier)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier or password incorrect")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account disabled. Contact your admin.")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier or password incorrect")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err != nil {
		newUser := userModel.UserModel{
			UserName: name,
			Email:    email,
			Password: generateDummyPassword(),
			GoogleID: &googleID,
			Role:     "user",
			IsActive: true,
		}
		if err := authRepo.CreateUser(db, &newUser); err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
		user = &newUser
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account disabled. Contact your admin.")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   ISSUE TOKENS + Response
========================== */

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func buildAccessClaims(user userModel.UserModel, tenantType string, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"typ":       "access",
		"sub":       user.ID.String(),
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"is_owner":  user.IsPlatformOwner(),
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	if user.TenantID != nil {
		claims["tenant_id"] = user.TenantID.String()
		if tenantType != "" {
			claims["tenant_type"] = tenantType
		}
	}
	return claims
}

func buildLoginResponseUser(user userModel.UserModel, tenantType string) fiber.Map {
	resp := fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"full_name": user.FullName,
		"role":      user.Role,
		"is_owner":  user.IsPlatformOwner(),
	}
	if user.TenantID != nil {
		resp["tenant_id"] = user.TenantID
		resp["tenant_type"] = tenantType
	}
	return resp
}

func issueTokens(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()
	tenantType := tenantTypeOf(db, user.TenantID)

	accessClaims := buildAccessClaims(user, tenantType, now)
	refreshClaims := buildRefreshClaims(user.ID, now)

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(jwtSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign refresh token")
	}

	// store the refresh token hashed
	tokenHash := computeRefreshHash(refreshToken, refreshSecret)
	ua, ip := c.Get("User-Agent"), c.IP()
	if err := createRefreshTokenFast(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     tokenHash,
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(ua),
		IP:        strptr(ip),
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user":         buildLoginResponseUser(user, tenantType),
		"access_token": accessToken,
	})
}

// Lower-latency refresh_token insert. Safe for tokens: worst case a
// login is lost on a crash right after commit.
func createRefreshTokenFast(db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`SET LOCAL synchronous_commit = OFF`).Error; err != nil {
			log.Printf("[WARN] set synchronous_commit=OFF failed: %v", err)
		}
		return authRepo.CreateRefreshToken(tx, rt)
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

func setXSRFCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "csrf_token",
		Value:    token,
		HTTPOnly: false, // double-submit: JS must read it
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  expires,
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// CSRF is mandatory when auth came via cookie (no Bearer)
	cookieAT := strings.TrimSpace(c.Cookies("access_token"))
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	usesCookieAuth := cookieAT != "" && !strings.HasPrefix(authHeader, "Bearer ")

	if usesCookieAuth {
		if err := helper.CheckCSRFCookieHeader(c); err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		}
	}

	accessToken := helper.GetRawAccessToken(c)
	ttl := resolveBlacklistTTL(accessToken)

	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, ttl); err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	} else {
		log.Println("[INFO] Logout without access token; clearing cookies anyway")
	}

	if rt := helper.GetRefreshTokenFromCookie(c); rt != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			_ = authRepo.DeleteRefreshTokenByHash(db, computeRefreshHash(rt, refreshSecret))
		}
	}

	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token", "csrf_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: name != "csrf_token",
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}

	return helper.JsonOK(c, "Logout successful", nil)
}

func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	if v := os.Getenv("BLACKLIST_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	jwtSecret, err := getJWTSecret()
	if err != nil || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				until := time.Until(time.Unix(int64(exp), 0))
				if until > 0 {
					return until + 60*time.Second
				}
				return time.Minute
			}
		}
	}
	return ttl
}

/* ==========================
   UTIL
========================== */

func generateDummyPassword() string {
	hash, _ := authHelper.HashPassword(randomString(24))
	return hash
}
