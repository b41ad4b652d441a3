package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"expense_manager/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour // 1 day

// Domain errors for auth flows.
var (
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials deliberately covers both "no such user" and
	// "wrong password" so callers cannot probe for usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login and token parsing.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(users repository.Users, cfg Config) *AuthService {
	// Zero means "use the default"; any other value is taken as given.
	ttl := cfg.TokenTTL
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		users:      users,
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   ttl,
	}
}

// Register hashes the password and creates a new user. Usernames are
// unique (case-sensitive); a duplicate fails with ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, name, username, password string) error {
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	if _, err := s.users.Create(ctx, name, username, hash); err != nil {
		// A concurrent registration can win the race between the lookup
		// above and this insert; the store reports that as a duplicate.
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// Login validates credentials and returns a signed bearer token bound to
// the user's id, alongside the username.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return LoginResult{}, err
	}
	if u == nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token for user %d: %w", u.ID, err)
	}
	return LoginResult{AccessToken: token, Name: u.Username}, nil
}

// ParseToken parses JWT and returns userID
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}
