package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"majalahku_backend/internals/configs"
	"majalahku_backend/internals/constants"
	"majalahku_backend/internals/features/users/auth/dto"
	authModel "majalahku_backend/internals/features/users/auth/model"
	helper "majalahku_backend/internals/helpers"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 14 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	return configs.JWTSecret, nil
}

func getRefreshSecret() (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET is not set")
	}
	return configs.JWTRefreshSecret, nil
}

func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

/* ===========================
   Register
=========================== */

func Register(db *gorm.DB, c *fiber.Ctx, body dto.RegisterRequest) error {
	email := strings.ToLower(strings.TrimSpace(body.UserEmail))

	var count int64
	if err := db.Model(&authModel.UserModel{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check email")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}
	pw := string(hashed)

	user := authModel.UserModel{
		UserEmail:    email,
		UserFullName: strings.TrimSpace(body.UserFullName),
		UserPassword: &pw,
		UserRole:     constants.RoleContributor,
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration successful", dto.ToUserDTO(user))
}

/* ===========================
   Login (email + password)
=========================== */

func Login(db *gorm.DB, c *fiber.Ctx, body dto.LoginRequest) error {
	email := strings.ToLower(strings.TrimSpace(body.UserEmail))

	var user authModel.UserModel
	if err := db.First(&user, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}

	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
	}
	if user.UserPassword == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "This account uses Google sign-in")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.UserPassword), []byte(body.UserPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	return issueTokens(db, c, user)
}

/* ===========================
   Login with Google ID token
=========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx, body dto.GoogleLoginRequest) error {
	clientID := configs.GoogleClientID
	if clientID == "" {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Google sign-in is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{clientID}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Failed to decode Google token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Google token has no email")
	}

	var user authModel.UserModel
	err = db.First(&user, "user_email = ?", email).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		gid := claimSet.Sub
		user = authModel.UserModel{
			UserEmail:    email,
			UserFullName: strings.TrimSpace(claimSet.Name),
			UserGoogleID: &gid,
			UserRole:     constants.RoleContributor,
			UserIsActive: true,
		}
		if user.UserFullName == "" {
			user.UserFullName = email
		}
		if err := db.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
		}
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	default:
		if user.UserGoogleID == nil {
			gid := claimSet.Sub
			if err := db.Model(&user).Update("user_google_id", gid).Error; err != nil {
				log.Printf("[WARN] failed to link google id: %v", err)
			}
		}
	}

	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
	}

	return issueTokens(db, c, user)
}

/* ===========================
   Refresh (rotate)
=========================== */

func Refresh(db *gorm.DB, c *fiber.Ctx, body dto.RefreshRequest) error {
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	hash := computeRefreshHash(body.RefreshToken, refreshSecret)

	var rt authModel.RefreshTokenModel
	if err := db.Where("token_hash = ? AND revoked_at IS NULL", hash).First(&rt).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	if nowUTC().After(rt.ExpiresAt) {
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token expired")
	}

	var user authModel.UserModel
	if err := db.First(&user, "user_id = ?", rt.UserID).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
	}

	// rotation: revoke the used token before issuing a new pair
	now := nowUTC()
	if err := db.Model(&rt).Update("revoked_at", &now).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to rotate refresh token")
	}

	return issueTokens(db, c, user)
}

/* ===========================
   Logout
=========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	token := ""
	if fields := strings.Fields(auth); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		token = fields[1]
	}
	if token == "" {
		token = c.Cookies("access_token")
	}

	if token != "" {
		entry := authModel.TokenBlacklist{
			Token:     token,
			ExpiredAt: resolveBlacklistTTL(token),
		}
		if err := db.Create(&entry).Error; err != nil {
			// duplicate token row means it is already blacklisted
			log.Printf("[WARN] blacklist insert: %v", err)
		}
	}

	// revoke all active refresh tokens of this user
	if raw, ok := c.Locals("user_id").(string); ok && raw != "" {
		if uid, err := uuid.Parse(raw); err == nil {
			now := nowUTC()
			if err := db.Model(&authModel.RefreshTokenModel{}).
				Where("user_id = ? AND revoked_at IS NULL", uid).
				Update("revoked_at", &now).Error; err != nil {
				log.Printf("[WARN] revoke refresh tokens: %v", err)
			}
		}
	}

	clearAuthCookies(c)
	return helper.Success(c, "Logged out", nil)
}

// resolveBlacklistTTL reads exp from the token so the blacklist row can be
// reaped once the token would have expired anyway.
func resolveBlacklistTTL(accessToken string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0)
		}
	}
	return nowUTC().Add(accessTokenTTL)
}

/* ===========================
   Token issuing
=========================== */

func buildAccessClaims(user authModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserFullName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
}

func issueTokens(db *gorm.DB, c *fiber.Ctx, user authModel.UserModel) error {
	secret, err := getJWTSecret()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).
		SignedString([]byte(secret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign access token")
	}

	refreshPlain := uuid.NewString() + "." + uuid.NewString()
	rt := authModel.RefreshTokenModel{
		UserID:    user.UserID,
		TokenHash: computeRefreshHash(refreshPlain, refreshSecret),
		ExpiresAt: now.Add(refreshTokenTTL),
	}
	if ua := c.Get("User-Agent"); ua != "" {
		rt.UserAgent = &ua
	}
	if ip := c.IP(); ip != "" {
		rt.IP = &ip
	}
	if err := db.Create(&rt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	setAuthCookies(c, accessToken, refreshPlain, now)

	return helper.Success(c, "Login successful", dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshPlain,
		User:         dto.ToUserDTO(user),
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	secure := configs.GetEnv("COOKIE_SECURE", "true") != "false"
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  now.Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  now.Add(refreshTokenTTL),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  expired,
			HTTPOnly: true,
			Path:     "/",
		})
	}
}
