package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ridwankhan/campusconnect/internal/config"
	"github.com/ridwankhan/campusconnect/internal/dto"
	"github.com/ridwankhan/campusconnect/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidIDToken   = errors.New("invalid identity provider token")
	ErrWrongDomain      = errors.New("email domain is not allowed")
	ErrNotAdministrator = errors.New("administrator privileges required")
	ErrUserNotFound     = errors.New("user not found")
)

// IdentityVerifier checks an external identity-provider token and returns
// its claims. Satisfied by GoogleJWKSClient.
type IdentityVerifier interface {
	VerifyToken(idToken, projectID string) (*GoogleJWTClaims, error)
}

type AuthService struct {
	db       *gorm.DB
	cfg      *config.Config
	verifier IdentityVerifier
}

func NewAuthService(db *gorm.DB, cfg *config.Config, verifier IdentityVerifier) *AuthService {
	return &AuthService{db: db, cfg: cfg, verifier: verifier}
}

// GoogleSignIn verifies a Firebase ID token, upserts the identity by email
// and issues a portal session token.
func (s *AuthService) GoogleSignIn(idToken string) (*dto.AuthResponse, error) {
	claims, err := s.verifier.VerifyToken(idToken, s.cfg.FirebaseProjectID)
	if err != nil {
		slog.Error("google token verification failed", "error", err)
		return nil, ErrInvalidIDToken
	}

	if s.cfg.AllowedEmailDomain != "" {
		parts := strings.Split(claims.Email, "@")
		if len(parts) != 2 || parts[1] != s.cfg.AllowedEmailDomain {
			return nil, ErrWrongDomain
		}
	}

	user, err := s.upsertUser(claims)
	if err != nil {
		return nil, err
	}

	token, err := s.issueSessionToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message: "Google Login Successful",
		Token:   token,
		User:    toUserResponse(user),
	}, nil
}

// AdministratorSignIn is GoogleSignIn restricted to the configured
// administrator emails; the identity's role is promoted on success.
func (s *AuthService) AdministratorSignIn(idToken string) (*dto.AuthResponse, error) {
	claims, err := s.verifier.VerifyToken(idToken, s.cfg.FirebaseProjectID)
	if err != nil {
		slog.Error("administrator token verification failed", "error", err)
		return nil, ErrInvalidIDToken
	}

	if s.cfg.AllowedEmailDomain != "" {
		parts := strings.Split(claims.Email, "@")
		if len(parts) != 2 || parts[1] != s.cfg.AllowedEmailDomain {
			return nil, ErrWrongDomain
		}
	}

	if !s.isAdminEmail(claims.Email) {
		return nil, ErrNotAdministrator
	}

	user, err := s.upsertUser(claims)
	if err != nil {
		return nil, err
	}

	if user.Role != "administrator" {
		if err := s.db.Model(user).Update("role", "administrator").Error; err != nil {
			return nil, fmt.Errorf("failed to promote administrator: %w", err)
		}
		user.Role = "administrator"
	}

	token, err := s.issueSessionToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message: "Administrator Login Successful",
		Token:   token,
		User:    toUserResponse(user),
	}, nil
}

// Me returns the caller's identity record.
func (s *AuthService) Me(userID uuid.UUID) (*dto.UserResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	resp := toUserResponse(&user)
	return &resp, nil
}

// UpdateProfile applies the owner's partial profile changes.
func (s *AuthService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	updates := map[string]interface{}{}
	if req.UserName != "" {
		updates["user_name"] = req.UserName
	}
	if req.PhoneNumber != "" {
		updates["phone_number"] = req.PhoneNumber
	}
	if req.Gender != "" {
		updates["gender"] = req.Gender
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
		if req.UserName != "" {
			user.UserName = req.UserName
		}
		if req.PhoneNumber != "" {
			user.PhoneNumber = &req.PhoneNumber
		}
		if req.Gender != "" {
			user.Gender = &req.Gender
		}
	}

	resp := toUserResponse(&user)
	return &resp, nil
}

func (s *AuthService) upsertUser(claims *GoogleJWTClaims) (*models.User, error) {
	displayName := claims.Name
	if displayName == "" {
		displayName = strings.Split(claims.Email, "@")[0]
	}

	var user models.User
	err := s.db.Where("email = ?", claims.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			ID:       uuid.New(),
			Email:    claims.Email,
			UserName: displayName,
		}
		if claims.Picture != "" {
			user.Image = &claims.Picture
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return &user, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.UserName == "" {
		s.db.Model(&user).Update("user_name", displayName)
		user.UserName = displayName
	}
	return &user, nil
}

func (s *AuthService) issueSessionToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"name":  user.UserName,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTSessionExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) isAdminEmail(email string) bool {
	for _, e := range strings.Split(s.cfg.AdminEmails, ",") {
		if strings.TrimSpace(e) == email {
			return true
		}
	}
	return false
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		UserName:    u.UserName,
		PhoneNumber: u.PhoneNumber,
		Gender:      u.Gender,
		Image:       u.Image,
	}
}
