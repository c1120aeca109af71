package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials signals a wrong phone number or password.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrWeakPassword signals the password doesn't meet requirements.
	ErrWeakPassword = errors.New("auth: password must be at least 8 characters")
)

// Role identifies the kind of account behind a session token.
type Role string

const (
	RoleProvider Role = "provider"
	RoleCompany  Role = "company"
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Identity is the authenticated caller extracted from a session token.
type Identity struct {
	ID    string
	Role  Role
	Phone string
}

// Service issues and verifies session tokens and hashes passwords.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates an authentication service signing tokens with secret.
func NewService(secret string) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    24 * time.Hour,
	}
}

// HashPassword hashes a plaintext password for storage.
func (s *Service) HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a stored hash against a plaintext candidate.
func (s *Service) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueToken creates a signed session token for the identity.
func (s *Service) IssueToken(identity Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   identity.ID,
		"role":  string(identity.Role),
		"phone": identity.Phone,
		"exp":   now.Add(s.ttl).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a session token and returns the identity it carries.
func (s *Service) ParseToken(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("auth: parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, errors.New("auth: invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Identity{}, errors.New("auth: invalid subject in token")
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return Identity{}, errors.New("auth: invalid role in token")
	}
	role := Role(roleStr)
	if !isValidRole(role) {
		return Identity{}, fmt.Errorf("auth: invalid role %q in token", roleStr)
	}
	phone, _ := claims["phone"].(string)

	return Identity{ID: sub, Role: role, Phone: phone}, nil
}

func isValidRole(role Role) bool {
	switch role {
	case RoleProvider, RoleCompany, RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}
