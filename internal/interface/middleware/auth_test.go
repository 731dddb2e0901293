package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/pkg/apperror"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

const (
	testSecret = "middleware-test-secret"
	aliceID    = "7c4d8b1e-0000-4000-8000-000000000001"
	ghostID    = "7c4d8b1e-0000-4000-8000-0000000000ff"
	brokenID   = "7c4d8b1e-0000-4000-8000-0000000000ee"
)

func init() { gin.SetMode(gin.TestMode) }

type stubResolver struct{}

func (stubResolver) Resolve(_ context.Context, id string) (*entity.User, error) {
	switch id {
	case aliceID:
		return &entity.User{ID: aliceID, Name: "Alice", Email: "alice@example.com"}, nil
	case brokenID:
		return nil, apperror.NewInternal("database error", errors.New("conn refused"))
	default:
		return nil, apperror.NewNotFound("user not found", nil)
	}
}

func newGuardedRouter(jwt *helpers.JWTManager) *gin.Engine {
	r := gin.New()
	r.GET("/private", Auth(jwt, stubResolver{}, helpers.NopLogger()), func(c *gin.Context) {
		p, ok := Principal(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "userID": c.GetString(CtxUserIDKey)})
	})
	return r
}

func TestAuth(t *testing.T) {
	t.Parallel()

	jwt := helpers.NewJWTManager(testSecret, time.Hour)
	valid, _, err := jwt.GenerateAccessToken(aliceID)
	require.NoError(t, err)
	ghost, _, err := jwt.GenerateAccessToken(ghostID)
	require.NoError(t, err)
	broken, _, err := jwt.GenerateAccessToken(brokenID)
	require.NoError(t, err)

	past := time.Now().Add(-48 * time.Hour)
	expired, _, err := helpers.NewJWTManager(testSecret, time.Hour).
		WithClock(func() time.Time { return past }).
		GenerateAccessToken(aliceID)
	require.NoError(t, err)
	forged, _, err := helpers.NewJWTManager("other-secret", time.Hour).GenerateAccessToken(aliceID)
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
		wantError   string
	}{
		{"missing header", "", http.StatusUnauthorized, msgNoToken, ""},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, msgNoToken, ""},
		{"bearer without token", "Bearer", http.StatusUnauthorized, msgTokenFailed, msgTokenInvalid},
		{"bearer with blank token", "Bearer   ", http.StatusUnauthorized, msgTokenFailed, msgTokenInvalid},
		{"bearer glued to token", "Bearer" + valid, http.StatusUnauthorized, msgTokenFailed, msgTokenInvalid},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, msgTokenFailed, msgTokenExpired},
		{"bad signature", "Bearer " + forged, http.StatusUnauthorized, msgTokenFailed, msgTokenInvalid},
		{"garbage", "Bearer abc.def", http.StatusUnauthorized, msgTokenFailed, msgTokenInvalid},
		{"unknown principal", "Bearer " + ghost, http.StatusUnauthorized, msgUserNotFound, ""},
		{"resolver failure", "Bearer " + broken, http.StatusInternalServerError, msgTokenFailed, "database error: conn refused"},
	}

	r := newGuardedRouter(jwt)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Equal(t, tt.wantError, body["error"])
		})
	}

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+valid)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"`+aliceID+`","userID":"`+aliceID+`"}`, w.Body.String())
	})
}
