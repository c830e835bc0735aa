// Package session resolves the bearer token on a request to a verified
// portal identity and exposes it to downstream handlers.
package session

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const identityKey = "identity"

// Identity is the verified caller attached to a request after the session
// token has been checked and its email resolved to an existing user row.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

var ErrNoIdentity = errors.New("no verified identity in context")

// Set stores the verified identity in Fiber context locals.
func Set(c *fiber.Ctx, id Identity) {
	c.Locals(identityKey, id)
}

// Get extracts the verified identity from Fiber context locals.
func Get(c *fiber.Ctx) (Identity, error) {
	if id, ok := c.Locals(identityKey).(Identity); ok {
		return id, nil
	}
	return Identity{}, ErrNoIdentity
}

// TokenEmail extracts the email claim from the parsed JWT in context.
// Used by the identity middleware before the database lookup.
func TokenEmail(c *fiber.Ctx) (string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("missing email claim")
	}

	return email, nil
}
