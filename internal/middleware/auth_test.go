package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ridwankhan/campusconnect/internal/config"
	"github.com/ridwankhan/campusconnect/internal/models"
	"github.com/ridwankhan/campusconnect/internal/session"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
	return db
}

func signSessionToken(t *testing.T, secret, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return signed
}

func newGuardedApp(db *gorm.DB, cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", JWTProtected(cfg), IdentityRequired(db), func(c *fiber.Ctx) error {
		id, err := session.Get(c)
		if err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"email": id.Email})
	})
	return app
}

func TestIdentityRequiredResolvesUser(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{JWTSecret: "secret"}
	user := models.User{ID: uuid.New(), Email: "student@campus.edu", UserName: "Student", Role: "user"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user error = %v", err)
	}

	app := newGuardedApp(db, cfg)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, "secret", user.Email))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestIdentityRequiredRejectsUnknownEmail(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{JWTSecret: "secret"}

	app := newGuardedApp(db, cfg)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, "secret", "ghost@campus.edu"))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestJWTProtectedRejectsMissingToken(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{JWTSecret: "secret"}

	app := newGuardedApp(db, cfg)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestJWTProtectedRejectsWrongSecret(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{JWTSecret: "secret"}

	app := newGuardedApp(db, cfg)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, "other-secret", "student@campus.edu"))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestAdminRequiredChecksEmailListAndRole(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{JWTSecret: "secret", AdminEmails: "dean@campus.edu"}

	listed := models.User{ID: uuid.New(), Email: "dean@campus.edu", UserName: "Dean", Role: "user"}
	promoted := models.User{ID: uuid.New(), Email: "promoted@campus.edu", UserName: "Promoted", Role: "administrator"}
	regular := models.User{ID: uuid.New(), Email: "student@campus.edu", UserName: "Student", Role: "user"}
	for _, u := range []*models.User{&listed, &promoted, &regular} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("create user error = %v", err)
		}
	}

	app := fiber.New()
	app.Get("/admin", JWTProtected(cfg), IdentityRequired(db), AdminRequired(db, cfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		email string
		want  int
	}{
		{listed.Email, http.StatusOK},
		{promoted.Email, http.StatusOK},
		{regular.Email, http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+signSessionToken(t, "secret", tc.email))
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test(%s) error = %v", tc.email, err)
		}
		if resp.StatusCode != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.email, resp.StatusCode, tc.want)
		}
	}
}
