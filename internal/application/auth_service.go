package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/pkg/apperror"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Cache  PrincipalCache
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, cache PrincipalCache, logger *logrus.Logger) *AuthService {
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &AuthService{Users: users, JWT: jwt, Cache: cache, Logger: logger}
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      entity.User
}

// Login checks email/password and issues an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			helpers.CompareDummyPassword(password)
			return nil, apperror.NewUnauthenticated("invalid credentials", nil)
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, apperror.NewUnauthenticated("invalid credentials", nil)
	}
	token, exp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		return nil, apperror.NewInternal("token generation failed", err)
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: u.Public()}, nil
}

// Resolve maps a principal id from a validated token to the stored user.
// Unknown ids fail with apperror.NotFound. The result never carries the password hash.
// A cached principal may outlive its row for up to the cache TTL, so a deleted
// user keeps resolving until the entry expires.
func (s *AuthService) Resolve(ctx context.Context, id string) (*entity.User, error) {
	canonical, ok := entity.CanonicalID(id)
	if ok {
		id = canonical
	}
	if s.Cache != nil && ok {
		u, ok, err := s.Cache.Get(ctx, id)
		if err != nil {
			s.Logger.WithError(err).WithField("user_id", id).Warn("principal cache read failed")
		}
		if ok {
			return u, nil
		}
	}

	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pub := u.Public()

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, &pub); err != nil {
			s.Logger.WithError(err).WithField("user_id", id).Warn("principal cache write failed")
		}
	}
	return &pub, nil
}
