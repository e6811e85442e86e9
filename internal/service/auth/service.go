package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/foliohq/folio/internal/config"
	"github.com/foliohq/folio/internal/entity"
	repo "github.com/foliohq/folio/internal/repository/user"
	"github.com/foliohq/folio/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/foliohq/folio/service/auth")

// userRepository is the persistence surface the service needs.
type userRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

// Claims is the session token payload: the user id as subject plus the role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and validates signed session tokens for the admin identity.
type Service struct {
	repo   userRepository
	cfg    config.Auth
	logger *zap.Logger
	now    func() time.Time
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Config     config.Config
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return newService(p.Repository, p.Config.Auth, p.Logger)
}

func newService(repository userRepository, cfg config.Auth, logger *zap.Logger) *Service {
	return &Service{
		repo:   repository,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// LoginResult carries the signed token together with its subject.
type LoginResult struct {
	Token string
	User  *entity.User
}

// Login verifies the credential pair and issues a time-boxed signed token.
// An unknown username and a wrong password are distinct failures.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, errorbank.BadRequest("username and password are required")
	}

	ctx, span := serviceTracer.Start(ctx, "AuthService.Login", trace.WithAttributes(attribute.String("user.username", username)))
	defer span.End()

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("user not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load credential", errorbank.WithCause(err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorbank.BadRequest("invalid credentials")
	}

	token, err := s.issueToken(user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token signing failed")
		return nil, errorbank.Internal("failed to issue token", errorbank.WithCause(err))
	}

	return &LoginResult{Token: token, User: user}, nil
}

// RegisterAdmin hashes and stores a new admin credential. There is no
// invitation or approval flow; uniqueness is whatever the storage layer
// enforces.
func (s *Service) RegisterAdmin(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, errorbank.BadRequest("username and password are required")
	}

	ctx, span := serviceTracer.Start(ctx, "AuthService.RegisterAdmin", trace.WithAttributes(attribute.String("user.username", username)))
	defer span.End()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		span.RecordError(err)
		return nil, errorbank.Internal("failed to hash password", errorbank.WithCause(err))
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.BadRequest("error registering admin", errorbank.WithCause(err))
	}

	return user, nil
}

// ParseToken validates a token's signature and expiry and returns its claims.
// The service keeps no session state; the token is the whole session.
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errorbank.Unauthorized("invalid token", errorbank.WithCause(err))
	}
	if !parsed.Valid {
		return nil, errorbank.Unauthorized("invalid token")
	}
	return claims, nil
}

func (s *Service) issueToken(user *entity.User) (string, error) {
	now := s.now()
	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
