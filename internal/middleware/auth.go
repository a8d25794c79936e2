package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"krishisahay/internal/db"
	"krishisahay/internal/models"
)

// UserStore looks up and creates users.
type UserStore interface {
	GetUserBySub(ctx context.Context, sub string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpsertUser(ctx context.Context, user *models.User) error
}

// AuthMiddleware resolves the current user from the session or from a
// trusted client certificate CN header.
type AuthMiddleware struct {
	users      UserStore
	certHeader string
}

// NewAuthMiddleware creates a new auth middleware instance. certHeader names
// the header carrying the client certificate CN; empty disables it.
func NewAuthMiddleware(users UserStore, certHeader string) *AuthMiddleware {
	return &AuthMiddleware{users: users, certHeader: certHeader}
}

// RequireAuth ensures the user is authenticated, redirecting to /login if not.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	user := m.resolve(c)
	if user == nil {
		if sess := session.FromContext(c); sess != nil {
			sess.Set("redirect_after_login", c.OriginalURL())
		}
		return c.Redirect().To("/login")
	}

	c.Locals("user", user)
	return c.Next()
}

// RequireAPIAuth ensures the user is authenticated, answering 401 if not.
func (m *AuthMiddleware) RequireAPIAuth(c fiber.Ctx) error {
	user := m.resolve(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "authentication required",
		})
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if user := m.resolve(c); user != nil {
		c.Locals("user", user)
	}
	return c.Next()
}

func (m *AuthMiddleware) resolve(c fiber.Ctx) *models.User {
	if user := m.fromCertHeader(c); user != nil {
		return user
	}

	sess := session.FromContext(c)
	if sess == nil {
		return nil
	}

	userSub, ok := sess.Get("user_sub").(string)
	if !ok || userSub == "" {
		return nil
	}

	user, err := m.users.GetUserBySub(c.Context(), userSub)
	if err != nil {
		sess.Destroy()
		return nil
	}
	return user
}

// fromCertHeader finds or creates the user named by the client certificate
// CN header, e.g. "Ravi Kumar (ravik)".
func (m *AuthMiddleware) fromCertHeader(c fiber.Ctx) *models.User {
	if m.certHeader == "" {
		return nil
	}
	cn := c.Get(m.certHeader)
	username := extractUsernameFromCN(cn)
	if username == "" {
		return nil
	}

	user, err := m.users.GetUserByUsername(c.Context(), username)
	if err == nil {
		return user
	}
	if !errors.Is(err, db.ErrUserNotFound) {
		slog.Error("failed to look up certificate user", "username", username, "error", err)
		return nil
	}

	user = &models.User{
		Sub:      "pki:" + username,
		Username: username,
		Name:     strings.TrimSpace(cn[:strings.LastIndex(cn, "(")]),
	}
	if err := m.users.UpsertUser(c.Context(), user); err != nil {
		slog.Error("failed to create certificate user", "username", username, "error", err)
		return nil
	}
	return user
}

// extractUsernameFromCN returns the username in the trailing parentheses of
// a CN like "Heath Taylor (heatht)", or "" when the CN has no such suffix.
func extractUsernameFromCN(cn string) string {
	cn = strings.TrimSpace(cn)
	if !strings.HasSuffix(cn, ")") {
		return ""
	}
	open := strings.LastIndex(cn, "(")
	if open < 0 {
		return ""
	}
	inner := cn[open+1 : len(cn)-1]
	if strings.ContainsAny(inner, "()") {
		return ""
	}
	return strings.TrimSpace(inner)
}
