package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"github.com/myjobmatch/jobfeed/config"
	"github.com/myjobmatch/jobfeed/models"
)

func newTestJWT() *JWTService {
	return NewJWTService(&config.Config{JWTSecret: "test-secret", JWTExpiryHours: 1})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestJWT()
	user := &models.User{ID: "u1", Email: "ada@example.com", Name: "Ada"}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestGenerateTokenRequiresID(t *testing.T) {
	_, err := newTestJWT().GenerateToken(&models.User{Email: "x@example.com"})
	assert.Error(t, err)
}

func TestValidateTokenRejects(t *testing.T) {
	svc := newTestJWT()
	user := &models.User{ID: "u1", Email: "ada@example.com"}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(&config.Config{JWTSecret: "other", JWTExpiryHours: 1})
		token, err := other.GenerateToken(user)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := svc.GenerateToken(user)
		require.NoError(t, err)

		later := newTestJWT()
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = later.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}

func TestRefreshToken(t *testing.T) {
	svc := newTestJWT()
	token, err := svc.GenerateToken(&models.User{ID: "u1", Email: "ada@example.com"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(30 * time.Minute) }
	refreshed, err := svc.RefreshToken(token)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.True(t, claims.ExpiresAt.After(time.Now().Add(time.Hour)))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, CheckPassword("correct horse", hash))
	assert.False(t, CheckPassword("wrong horse", hash))

	_, err = HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc", "abc", false},
		{"bearer  abc ", "abc", false},
		{"", "", true},
		{"Basic abc", "", true},
		{"Bearer", "", true},
	}
	for _, tt := range tests {
		got, err := BearerToken(tt.header)
		if tt.wantErr {
			assert.Error(t, err, tt.header)
			continue
		}
		require.NoError(t, err, tt.header)
		assert.Equal(t, tt.want, got)
	}
}

func newRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", mw, func(c *gin.Context) {
		if claims := GetAuthClaims(c); claims != nil {
			c.String(http.StatusOK, claims.UserID)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	svc := newTestJWT()
	token, err := svc.GenerateToken(&models.User{ID: "u1", Email: "ada@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid", "Bearer " + token, http.StatusOK, "u1"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"invalid", "Bearer nope", http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			newRouter(AuthMiddleware(svc)).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	svc := newTestJWT()
	router := newRouter(OptionalAuthMiddleware(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer broken")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestVerifyIDToken(t *testing.T) {
	newService := func(payload *idtoken.Payload, err error) *GoogleAuthService {
		return &GoogleAuthService{
			clientID: "client",
			validate: func(context.Context, string, string) (*idtoken.Payload, error) {
				return payload, err
			},
		}
	}

	t.Run("ok", func(t *testing.T) {
		svc := newService(&idtoken.Payload{Subject: "g-1", Claims: map[string]interface{}{
			"email": "ada@example.com", "name": "Ada", "email_verified": true,
		}}, nil)
		id, err := svc.VerifyIDToken(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, &GoogleIdentity{GoogleID: "g-1", Email: "ada@example.com", Name: "Ada"}, id)
	})

	t.Run("unverified email", func(t *testing.T) {
		svc := newService(&idtoken.Payload{Subject: "g-1", Claims: map[string]interface{}{
			"email": "ada@example.com", "email_verified": false,
		}}, nil)
		_, err := svc.VerifyIDToken(context.Background(), "tok")
		assert.Error(t, err)
	})

	t.Run("validation error", func(t *testing.T) {
		_, err := newService(nil, errors.New("bad signature")).VerifyIDToken(context.Background(), "tok")
		assert.Error(t, err)
	})

	t.Run("not configured", func(t *testing.T) {
		svc := NewGoogleAuthService(&config.Config{})
		_, err := svc.VerifyIDToken(context.Background(), "tok")
		assert.ErrorIs(t, err, ErrGoogleNotConfigured)
	})
}
