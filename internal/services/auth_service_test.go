package services

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ridwankhan/campusconnect/internal/config"
	"github.com/ridwankhan/campusconnect/internal/models"
)

type stubVerifier struct {
	claims *GoogleJWTClaims
	err    error
}

func (v *stubVerifier) VerifyToken(idToken, projectID string) (*GoogleJWTClaims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTSessionExpiry:   time.Hour,
		AllowedEmailDomain: "campus.edu",
		AdminEmails:        "head@campus.edu, dean@campus.edu",
		FirebaseProjectID:  "campus-portal",
	}
}

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

func TestGoogleSignInCreatesUserAndIssuesToken(t *testing.T) {
	db := openTestDB(t)
	cfg := testConfig()
	verifier := &stubVerifier{claims: &GoogleJWTClaims{Email: "student@campus.edu", Name: "Student One"}}
	svc := NewAuthService(db, cfg, verifier)

	resp, err := svc.GoogleSignIn("id-token")
	if err != nil {
		t.Fatalf("GoogleSignIn() error = %v", err)
	}
	if resp.User.Email != "student@campus.edu" {
		t.Fatalf("email = %q, want %q", resp.User.Email, "student@campus.edu")
	}

	token, err := jwt.Parse(resp.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("session token invalid: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["email"] != "student@campus.edu" {
		t.Fatalf("token email = %v, want student@campus.edu", claims["email"])
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("user count = %d, want 1", count)
	}
}

func TestGoogleSignInIsIdempotentByEmail(t *testing.T) {
	db := openTestDB(t)
	verifier := &stubVerifier{claims: &GoogleJWTClaims{Email: "student@campus.edu", Name: "Student One"}}
	svc := NewAuthService(db, testConfig(), verifier)

	first, err := svc.GoogleSignIn("id-token")
	if err != nil {
		t.Fatalf("first GoogleSignIn() error = %v", err)
	}
	second, err := svc.GoogleSignIn("id-token")
	if err != nil {
		t.Fatalf("second GoogleSignIn() error = %v", err)
	}
	if first.User.ID != second.User.ID {
		t.Fatalf("user IDs differ across sign-ins: %s vs %s", first.User.ID, second.User.ID)
	}
}

func TestGoogleSignInRejectsForeignDomain(t *testing.T) {
	db := openTestDB(t)
	verifier := &stubVerifier{claims: &GoogleJWTClaims{Email: "outsider@gmail.com"}}
	svc := NewAuthService(db, testConfig(), verifier)

	if _, err := svc.GoogleSignIn("id-token"); !errors.Is(err, ErrWrongDomain) {
		t.Fatalf("GoogleSignIn() error = %v, want ErrWrongDomain", err)
	}
}

func TestGoogleSignInRejectsBadToken(t *testing.T) {
	db := openTestDB(t)
	verifier := &stubVerifier{err: errors.New("signature mismatch")}
	svc := NewAuthService(db, testConfig(), verifier)

	if _, err := svc.GoogleSignIn("id-token"); !errors.Is(err, ErrInvalidIDToken) {
		t.Fatalf("GoogleSignIn() error = %v, want ErrInvalidIDToken", err)
	}
}

func TestAdministratorSignInPromotesRole(t *testing.T) {
	db := openTestDB(t)
	verifier := &stubVerifier{claims: &GoogleJWTClaims{Email: "dean@campus.edu", Name: "The Dean"}}
	svc := NewAuthService(db, testConfig(), verifier)

	resp, err := svc.AdministratorSignIn("id-token")
	if err != nil {
		t.Fatalf("AdministratorSignIn() error = %v", err)
	}

	var user models.User
	if err := db.First(&user, "id = ?", resp.User.ID).Error; err != nil {
		t.Fatalf("load user error = %v", err)
	}
	if user.Role != "administrator" {
		t.Fatalf("role = %q, want %q", user.Role, "administrator")
	}
}

func TestAdministratorSignInRejectsNonAdmin(t *testing.T) {
	db := openTestDB(t)
	verifier := &stubVerifier{claims: &GoogleJWTClaims{Email: "student@campus.edu"}}
	svc := NewAuthService(db, testConfig(), verifier)

	if _, err := svc.AdministratorSignIn("id-token"); !errors.Is(err, ErrNotAdministrator) {
		t.Fatalf("AdministratorSignIn() error = %v, want ErrNotAdministrator", err)
	}
}
