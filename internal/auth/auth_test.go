package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/directory-cli/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return NewService(s, "test-secret", 1)
}

func TestService_RegisterAndLogin(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	u, token, err := svc.Register(ctx, "Owner@Acme.Test", "hunter22", "Pat Owner", "Acme Roofing")
	require.NoError(t, err)
	assert.Equal(t, "owner@acme.test", u.Email)
	assert.Equal(t, "user", u.Role)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "hunter22", u.PasswordHash)

	u2, token2, err := svc.Login(ctx, "owner@acme.test", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, u.ID, u2.ID)
	assert.NotEmpty(t, token2)
}

func TestService_RegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "dup@acme.test", "pw", "One", "")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "dup@acme.test", "pw2", "Two", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_RegisterMissingFields(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	_, _, err := svc.Register(context.Background(), "x@y.test", "", "Name", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_LoginWrongPassword(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "owner@acme.test", "right", "Pat", "")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "owner@acme.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_LoginUnknownEmail(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	_, _, err := svc.Login(context.Background(), "ghost@acme.test", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_VerifyToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	u, token, err := svc.Register(ctx, "owner@acme.test", "pw", "Pat Owner", "Acme Roofing")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
	assert.Equal(t, "owner@acme.test", claims.Email)
	assert.Equal(t, "Pat Owner", claims.Name)
	assert.Equal(t, "Acme Roofing", claims.Company)
}

func TestService_VerifyRejectsBadToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_VerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: "owner@acme.test",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := other.SignedString([]byte("different-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_VerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: "owner@acme.test",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	_, token, err := svc.Register(ctx, "owner@acme.test", "pw", "Pat", "")
	require.NoError(t, err)

	var gotEmail string
	handler := svc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		gotEmail = claims.Email
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "owner@acme.test", gotEmail)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
