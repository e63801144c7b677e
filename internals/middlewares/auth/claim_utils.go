package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// Authorization header, cookie fallback
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - No token provided")
	}

	// tolerant split: repeated whitespace & case-insensitive scheme
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - Invalid token format")
	}
	tok := strings.TrimSpace(fields[1])
	tok = strings.Trim(tok, "\"'")

	if tok == "" {
		return "", fmt.Errorf("unauthorized - Empty token")
	}
	return tok, nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exp format")
		}
		expUnix = n
	default:
		n, err := strconv.ParseInt(fmt.Sprintf("%v", t), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exp type")
		}
		expUnix = n
	}

	if time.Now().Add(-skew).Unix() >= expUnix {
		return fmt.Errorf("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"]
	if !ok {
		raw, ok = claims["sub"]
	}
	if !ok {
		return uuid.Nil, fmt.Errorf("user_id claim missing")
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("user_id claim is not a string")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user_id claim is not a uuid")
	}
	return id, nil
}

/* ======== Accessors for controllers ======== */

// GetUserID reads the authenticated user id stored by AuthMiddleware.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user id missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id")
	}
	return id, nil
}

// GetUserRole reads the role stored by AuthMiddleware ("" when absent).
func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}
