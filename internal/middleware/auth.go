// Package middleware provides HTTP middleware for the fiber app.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"paygate/internal/models"
)

// SessionKey is the fiber locals key holding the request's AuthContext.
const SessionKey = "session"

// AuthMiddleware validates the session JWT and builds the AuthContext handed
// to the gate and orchestrator. This is the single authoritative read of role
// and token per request; nothing downstream reads ambient auth state.
type AuthMiddleware struct {
	secret []byte
	log    *zap.Logger
}

func NewAuthMiddleware(secret string, log *zap.Logger) *AuthMiddleware {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthMiddleware{secret: []byte(secret), log: log}
}

// Handler validates the bearer token and stores the session in locals.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		m.log.Debug("token validation failed", zap.Error(err))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals(SessionKey, models.AuthContext{
		UserID: claims.UserID,
		Role:   claims.Role,
		Mobile: claims.Mobile,
		Token:  tokenString,
	})
	return c.Next()
}

// Session extracts the AuthContext set by Handler.
func Session(c *fiber.Ctx) models.AuthContext {
	if session, ok := c.Locals(SessionKey).(models.AuthContext); ok {
		return session
	}
	return models.AuthContext{}
}
