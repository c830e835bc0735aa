package middleware

import (
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ridwankhan/campusconnect/internal/config"
	"github.com/ridwankhan/campusconnect/internal/dto"
	"github.com/ridwankhan/campusconnect/internal/models"
	"github.com/ridwankhan/campusconnect/internal/session"
	"gorm.io/gorm"
)

// JWTProtected verifies the session token carried in the Authorization
// bearer header.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Authentication required. No valid session token found.",
			})
		},
	})
}

// IdentityRequired resolves the verified token's email claim to an existing
// user row and attaches the identity to the request. A token whose email no
// longer matches a user is treated as an invalid session.
func IdentityRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := session.TokenEmail(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid session. Please log in again.",
			})
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid session. Please log in again.",
			})
		}

		session.Set(c, session.Identity{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.UserName,
		})
		return c.Next()
	}
}

// IdentityOptional attaches the caller's identity when a valid bearer token
// is present and proceeds anonymously otherwise. Public reads use it to
// personalize responses without requiring a session.
func IdentityOptional(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Next()
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Next()
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Next()
		}
		email, _ := claims["email"].(string)
		if email == "" {
			return c.Next()
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			return c.Next()
		}

		session.Set(c, session.Identity{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.UserName,
		})
		return c.Next()
	}
}
