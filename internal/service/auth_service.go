package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"comitefd/internal/config"
	"comitefd/internal/models"
	"comitefd/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.Admin, error)
	Login(ctx context.Context, email, password string) (*models.Admin, string, error)
	ParseToken(tokenString string) (*models.Admin, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	cfg       *config.Config
}

func NewAuthService(adminRepo repository.AdminRepository, cfg *config.Config) AuthService {
	return &authService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// dummyHash keeps the credential check doing a bcrypt comparison even
// when the email is unknown, so both failure paths cost the same.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Register creates the bootstrap admin account. It only succeeds while
// no admin exists at all; afterwards the seed tool is the only way in.
func (s *authService) Register(ctx context.Context, email, password string) (*models.Admin, error) {
	count, err := s.adminRepo.CountAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not check existing admins: %w", err)
	}
	if count > 0 {
		return nil, ErrRegistrationClosed
	}

	admin, err := s.adminRepo.CreateAdmin(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("could not create admin: %w", err)
	}

	return admin, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Admin, string, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("could not look up admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateSessionToken(admin)
	if err != nil {
		return nil, "", fmt.Errorf("could not generate session token: %w", err)
	}

	return admin, token, nil
}

func (s *authService) generateSessionToken(admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"adminId": admin.AdminID,
		"email":   admin.Email,
		"exp":     time.Now().Add(s.cfg.SessionDuration).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ParseToken(tokenString string) (*models.Admin, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	adminID, ok1 := claims["adminId"].(string)
	email, ok2 := claims["email"].(string)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("invalid token claims")
	}

	return &models.Admin{AdminID: adminID, Email: email}, nil
}
