// Package auth handles dashboard user registration, login, and JWT
// verification for the API server.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rotisserie/eris"
	"golang.org/x/crypto/bcrypt"

	"github.com/sells-group/directory-cli/internal/model"
	"github.com/sells-group/directory-cli/internal/store"
)

var (
	// ErrInvalidCredentials is returned when the email or password is wrong.
	ErrInvalidCredentials = eris.New("auth: invalid credentials")
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = eris.New("auth: email already registered")
	// ErrInvalidToken is returned when a token fails verification.
	ErrInvalidToken = eris.New("auth: invalid token")
)

// Claims carries the user identity inside a JWT.
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company,omitempty"`
	jwt.RegisteredClaims
}

// Service issues and verifies tokens against the user store.
type Service struct {
	store    store.Store
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates an auth service. ttlHours defaults to 24 when zero.
func NewService(s store.Store, secret string, ttlHours int) *Service {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &Service{
		store:    s,
		secret:   []byte(secret),
		tokenTTL: time.Duration(ttlHours) * time.Hour,
	}
}

// Register creates a new user and returns it with a signed token.
func (s *Service) Register(ctx context.Context, email, password, name, company string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || name == "" {
		return nil, "", ErrInvalidCredentials
	}

	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, "", eris.Wrap(err, "auth: check existing user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", eris.Wrap(err, "auth: hash password")
	}

	u := &model.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		Company:      strings.TrimSpace(company),
		PasswordHash: string(hash),
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, "", eris.Wrap(err, "auth: create user")
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login checks credentials and returns the user with a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", eris.Wrap(err, "auth: lookup user")
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Verify parses and validates a token, returning its claims.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, eris.Errorf("auth: unexpected signing method %s", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) issueToken(u *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:   u.Email,
		Name:    u.Name,
		Role:    u.Role,
		Company: u.Company,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", eris.Wrap(err, "auth: sign token")
	}
	return signed, nil
}

type contextKey struct{}

// ClaimsFromContext returns the verified claims stored by Middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	return claims, ok
}

// Middleware rejects requests without a valid Bearer token and stores
// the verified claims on the request context.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		claims, err := s.Verify(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), contextKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
