package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/infrastructure/memory"
	"github.com/oksasatya/go-blog-api/pkg/apperror"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

func seedUser(t *testing.T, store *memory.Store, name, email, password string) *entity.User {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	require.NoError(t, err)
	u := &entity.User{Name: name, Email: email, Password: hash}
	require.NoError(t, store.Users().Create(context.Background(), u))
	return u
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	alice := seedUser(t, store, "Alice", "alice@example.com", "password123")
	jwtm := helpers.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(store.Users(), jwtm, nil, nil)
	ctx := context.Background()

	res, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, res.User.ID)
	assert.Empty(t, res.User.Password)

	claims, err := jwtm.ParseAccessToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, claims.UserID)

	_, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.True(t, apperror.IsUnauthenticated(err))

	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.True(t, apperror.IsUnauthenticated(err))
}

func TestAuthService_Resolve(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	alice := seedUser(t, store, "Alice", "alice@example.com", "password123")
	cache := newFakeCache()
	svc := NewAuthService(store.Users(), helpers.NewJWTManager("s", 0), cache, nil)
	ctx := context.Background()

	u, err := svc.Resolve(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Empty(t, u.Password)
	assert.Equal(t, 1, cache.sets)

	// second lookup is served from the cache
	_, err = svc.Resolve(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	_, err = svc.Resolve(ctx, entity.NewID())
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Resolve(ctx, "not-a-uuid")
	assert.True(t, apperror.IsNotFound(err))
}

func TestAuthService_ResolveCacheFailureFallsThrough(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	alice := seedUser(t, store, "Alice", "alice@example.com", "password123")
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	svc := NewAuthService(store.Users(), helpers.NewJWTManager("s", 0), cache, nil)

	u, err := svc.Resolve(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, u.ID)
}

func TestAuthService_ResolveNormalizesCacheKey(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	alice := seedUser(t, store, "Alice", "alice@example.com", "password123")
	cache := newFakeCache()
	svc := NewAuthService(store.Users(), helpers.NewJWTManager("s", 0), cache, nil)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, 1, cache.sets)

	u, err := svc.Resolve(ctx, strings.ToUpper(alice.ID))
	require.NoError(t, err)
	assert.Equal(t, alice.ID, u.ID)
	assert.Equal(t, 1, cache.sets)
}
