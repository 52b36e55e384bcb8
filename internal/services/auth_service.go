package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"shopfront/internal/identity"
	"shopfront/internal/models"
	"shopfront/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Domain validation outcomes. These are returned, never panicked; the
// caller decides how to surface them.
var (
	ErrEmailTaken         = fmt.Errorf("email already registered")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
)

// Session describes an authenticated session: the signed token plus the
// derived storefront user id the user-scoped stores key on.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// AuthService handles business logic for demo authentication.
type AuthService struct {
	accountRepo repositories.AccountRepository
	jwtSecret   []byte
	tokenDurat  time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(accountRepo repositories.AccountRepository, jwtSecret string) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenDurat:  24 * time.Hour, // Token valid for 24 hours
	}
}

// normalizeEmail lowercases and trims an email so lookups and derived
// ids are insensitive to how the address was typed.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register registers a new account, hashes its password, and saves it.
// A duplicate email yields ErrEmailTaken.
func (s *AuthService) Register(account *models.Account) error {
	account.Email = normalizeEmail(account.Email)

	if existing, err := s.accountRepo.GetByEmail(account.Email); err == nil && existing != nil {
		return ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account.Password = string(hashedPassword)

	if err := s.accountRepo.Create(account); err != nil {
		return fmt.Errorf("failed to register account: %w", err)
	}
	return nil
}

// Login authenticates an account and returns a session with a JWT
// token and the derived user id. Unknown emails and wrong passwords
// both yield ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*Session, error) {
	email = normalizeEmail(email)

	account, err := s.accountRepo.GetByEmail(email)
	if err != nil {
		// Don't reveal whether the email exists.
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	userID := identity.UserID(email)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"name":    account.Name,
		"email":   account.Email,
		"exp":     time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":     time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &Session{
		Token:  tokenString,
		UserID: userID,
		Name:   account.Name,
		Email:  account.Email,
	}, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
