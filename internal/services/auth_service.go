package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService gates the admin panel behind the single shared credential
// pair. It is an illustrative boundary, not real multi-user authentication:
// one username, one bcrypt-hashed password, signed session tokens.
type AuthService struct {
	username      string
	passwordHash  []byte
	jwtSecret     string
	jwtExpiration time.Duration

	// revoked session tokens, kept until their natural expiry
	blacklistedTokens map[string]time.Time
	blacklistMutex    sync.RWMutex
}

// NewAuthService creates an auth service for the given credential pair. The
// plain password from configuration is hashed once at startup.
func NewAuthService(username, password, jwtSecret string, jwtExpirationSeconds int) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &AuthService{
		username:          username,
		passwordHash:      hash,
		jwtSecret:         jwtSecret,
		jwtExpiration:     time.Duration(jwtExpirationSeconds) * time.Second,
		blacklistedTokens: make(map[string]time.Time),
	}, nil
}

// SessionClaims represents admin session token claims
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Login checks the credential pair and returns a session token
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username {
		return "", fmt.Errorf("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", fmt.Errorf("invalid username or password")
	}

	now := time.Now()
	claims := &SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "pharmacy-admin",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken validates a session token and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*SessionClaims, error) {
	if s.IsTokenBlacklisted(tokenString) {
		return nil, fmt.Errorf("token has been revoked")
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// Logout revokes a session token
func (s *AuthService) Logout(tokenString string) {
	claims, err := s.ValidateToken(tokenString)
	expiry := time.Now().Add(s.jwtExpiration)
	if err == nil && claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	s.blacklistMutex.Lock()
	defer s.blacklistMutex.Unlock()
	s.blacklistedTokens[tokenString] = expiry

	// drop tokens that have expired on their own
	now := time.Now()
	for token, exp := range s.blacklistedTokens {
		if now.After(exp) {
			delete(s.blacklistedTokens, token)
		}
	}
}

// IsTokenBlacklisted checks whether a token has been revoked
func (s *AuthService) IsTokenBlacklisted(tokenString string) bool {
	s.blacklistMutex.RLock()
	defer s.blacklistMutex.RUnlock()
	expiry, exists := s.blacklistedTokens[tokenString]
	if !exists {
		return false
	}
	return time.Now().Before(expiry)
}
